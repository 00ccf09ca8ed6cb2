// Package achievements submits achievement files to the backend for review.
package achievements
