// Package posts exposes announcement posts, with an offline snapshot of the
// last successful fetch.
package posts
