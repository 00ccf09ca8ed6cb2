package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"kiib/internal/domain"
)

// ListPosts returns all announcement posts, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.getJSON(ctx, "/posts/", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost publishes an announcement as a multipart form with title,
// content and an optional image part. The backend rejects non-admin callers.
func (c *Client) CreatePost(ctx context.Context, draft domain.PostDraft) (domain.Post, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	if err := w.WriteField("title", draft.Title); err != nil {
		return domain.Post{}, err
	}
	if err := w.WriteField("content", draft.Content); err != nil {
		return domain.Post{}, err
	}
	if draft.Image != nil {
		part, err := w.CreateFormFile("image", draft.ImageName)
		if err != nil {
			return domain.Post{}, err
		}
		if _, err := io.Copy(part, draft.Image); err != nil {
			return domain.Post{}, err
		}
	}
	if err := w.Close(); err != nil {
		return domain.Post{}, err
	}

	var post domain.Post
	if err := c.do(ctx, http.MethodPost, "/posts/", w.FormDataContentType(), buf, &post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// DeletePost removes an announcement. The backend rejects non-admin callers.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+strconv.FormatInt(id, 10), "", nil, nil)
}
