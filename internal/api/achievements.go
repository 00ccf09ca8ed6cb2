package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadAchievement submits a file for review as a multipart "file" part.
// Any authenticated user may upload.
func (c *Client) UploadAchievement(ctx context.Context, filename string, r io.Reader) error {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/achievements/upload", w.FormDataContentType(), buf, nil)
}
