// Package api is the HTTP client for the FormTrack server. It holds the
// bearer token obtained at login and attaches it to every protected call;
// no other component ever sees or parses credentials.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/poseform/formtrack/internal/common"
)

type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
	userID      string
	userName    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Session mirrors the server's session JSON.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Exercise  string    `json:"exercise"`
	Accuracy  float64   `json:"accuracy"`
	Feedback  string    `json:"feedback"`
	Timestamp time.Time `json:"timestamp"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) IsLoggedIn() bool { return c.accessToken != "" }
func (c *Client) UserID() string   { return c.userID }
func (c *Client) UserName() string { return c.userName }

// Logout drops the held credential and identity.
func (c *Client) Logout() {
	c.accessToken = ""
	c.userID = ""
	c.userName = ""
}

func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, out any) error {

	var reader io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("response decode error: %w", err)
		}
	}

	return nil
}

// statusError maps the HTTP outcome back onto the shared sentinel errors so
// callers can branch with errors.Is regardless of transport.
func statusError(resp *http.Response) error {
	var m messageResponse
	_ = json.NewDecoder(resp.Body).Decode(&m)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = common.ErrInvalidCredential
	case http.StatusForbidden:
		sentinel = common.ErrForbidden
	case http.StatusBadRequest:
		sentinel = common.ErrValidation
	case http.StatusConflict:
		sentinel = common.ErrDuplicateEmail
	case http.StatusNotFound:
		sentinel = common.ErrNotFound
	default:
		sentinel = common.ErrInternal
	}

	if m.Message != "" {
		return fmt.Errorf("%s: %w", m.Message, sentinel)
	}
	return sentinel
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", body, nil)
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"user"`
}

// Login authenticates and stores the returned bearer token and identity on
// the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	var out loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return err
	}

	c.accessToken = out.Token
	c.userID = out.User.ID
	c.userName = out.User.Name
	return nil
}

// SaveSession submits one finished capture run. The server derives the
// owner from the token; no identity travels in the body.
func (c *Client) SaveSession(ctx context.Context, exercise string, accuracy float64, feedback string) error {
	body := map[string]any{
		"exercise": exercise,
		"accuracy": accuracy,
		"feedback": feedback,
	}
	return c.doJSON(ctx, http.MethodPost, "/session", body, nil)
}

// UploadVideo sends one video as a multipart form. The caller supplies the
// MIME type; the server re-checks it before touching storage.
func (c *Client) UploadVideo(ctx context.Context, name, title, contentType string, body io.Reader) error {
	if !c.IsLoggedIn() {
		return common.ErrMissingCredential
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("title", title); err != nil {
		return err
	}

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="video"; filename="%s"`, name))
	partHeader.Set("Content-Type", contentType)
	part, err := mw.CreatePart(partHeader)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, body); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	return nil
}

// ListSessions returns the logged-in user's sessions, newest first.
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	if !c.IsLoggedIn() {
		return nil, common.ErrMissingCredential
	}

	var out []Session
	if err := c.doJSON(ctx, http.MethodGet, "/session/"+c.userID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
