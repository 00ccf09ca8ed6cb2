package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"kiib/internal/domain"
)

// DefaultBaseURL matches the backend's development address.
const DefaultBaseURL = "http://127.0.0.1:8000/api/v1"

// Client talks to the campus points backend. It is the single choke point
// for all backend calls: every request is decorated with the persisted
// bearer credential when one exists, and any 401 response evicts that
// credential before the failure is returned to the caller unchanged.
type Client struct {
	base  string
	http  *http.Client
	creds domain.CredentialStore

	onUnauthorized func()
}

// New returns a client for the backend at base, attaching credentials from creds.
func New(base string, httpClient *http.Client, creds domain.CredentialStore) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		http:  httpClient,
		creds: creds,
	}
}

// OnUnauthorized registers fn to run after a 401 evicted the persisted
// credential, so in-memory session state can follow the eviction.
func (c *Client) OnUnauthorized(fn func()) { c.onUnauthorized = fn }

// do issues one request. A stored credential is attached as a bearer
// header; failing to read the store never blocks the request. Non-2xx
// responses come back as *APIError, with the persisted credential evicted
// first when the status is 401.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if cred, ok, err := c.creds.LoadCredential(); err == nil && ok {
		req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		apiErr := decodeError(method, path, resp)
		if resp.StatusCode == http.StatusUnauthorized {
			_ = c.creds.ClearCredential()
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, "application/json", buf, out)
}

func (c *Client) patchJSON(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, "application/json", buf, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), out)
}

// Compile-time assertion that Client implements domain.APIClient.
var _ domain.APIClient = (*Client)(nil)
