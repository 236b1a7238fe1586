// Package client is a typed HTTP client for the resume API. It carries
// the single-flight fetch guard the edit UI relies on: concurrent resume
// fetches share one request, and a forced refresh aborts a fetch it
// supersedes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/msomdec/resume-forge/internal/domain"
	"github.com/msomdec/resume-forge/internal/service"
)

// User is the client-side view of an account.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// Client talks to a resume-forge server.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string

	mu       sync.Mutex
	inflight *resumeFetch
}

type resumeFetch struct {
	cancel context.CancelFunc
	done   chan struct{}
	resume *domain.Resume
	err    error
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
	}
}

// SignUp registers a new account and stores the returned token for
// subsequent calls.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (*User, error) {
	return c.authenticate(ctx, "/auth/signup", map[string]string{
		"name": name, "email": email, "password": password,
	}, http.StatusCreated)
}

// SignIn authenticates and stores the returned token for subsequent calls.
func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, "/auth/signin", map[string]string{
		"email": email, "password": password,
	}, http.StatusOK)
}

func (c *Client) authenticate(ctx context.Context, path string, body map[string]string, wantStatus int) (*User, error) {
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
		User    *User  `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, wantStatus, &env); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.token = env.Token
	c.mu.Unlock()
	return env.User, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var env struct {
		Data *User `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FetchResume returns the caller's resume. If a fetch is already in
// flight, the caller joins it instead of issuing a second request.
func (c *Client) FetchResume(ctx context.Context) (*domain.Resume, error) {
	c.mu.Lock()
	call := c.inflight
	if call == nil {
		call = c.startFetchLocked()
	}
	c.mu.Unlock()

	select {
	case <-call.done:
		return call.resume, call.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RefreshResume aborts any in-flight fetch and issues a fresh one. Used
// after a save so joiners never see a superseded document.
func (c *Client) RefreshResume(ctx context.Context) (*domain.Resume, error) {
	c.mu.Lock()
	if c.inflight != nil {
		c.inflight.cancel()
		c.inflight = nil
	}
	call := c.startFetchLocked()
	c.mu.Unlock()

	select {
	case <-call.done:
		return call.resume, call.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// startFetchLocked begins a resume fetch on its own cancelable context
// so that joiners are not tied to the initiating caller's deadline.
// c.mu must be held.
func (c *Client) startFetchLocked() *resumeFetch {
	fetchCtx, cancel := context.WithCancel(context.Background())
	call := &resumeFetch{cancel: cancel, done: make(chan struct{})}
	c.inflight = call

	go func() {
		defer cancel()
		var env struct {
			Data *domain.Resume `json:"data"`
		}
		err := c.do(fetchCtx, http.MethodGet, "/resume", nil, http.StatusOK, &env)

		c.mu.Lock()
		if c.inflight == call {
			c.inflight = nil
		}
		c.mu.Unlock()

		call.resume, call.err = env.Data, err
		close(call.done)
	}()

	return call
}

// SaveResume submits a partial or full resume and returns the merged
// document. Saves are never canceled once issued.
func (c *Client) SaveResume(ctx context.Context, patch *service.ResumePatch) (*domain.Resume, error) {
	var env struct {
		Data *domain.Resume `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/resume", patch, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// DeleteResume removes the caller's resume.
func (c *Client) DeleteResume(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/resume", nil, http.StatusOK, nil)
}

// ExportResume downloads the PDF export into dir under the fixed export
// filename and returns the written path.
func (c *Client) ExportResume(ctx context.Context, dir string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/resume/export", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("export resume: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("export resume: unexpected status %d", resp.StatusCode)
	}

	path := filepath.Join(dir, service.ExportFilename)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create pdf file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("write pdf file: %w", err)
	}
	return path, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, dst any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var env struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&env)
		if env.Message == "" {
			env.Message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s %s: %s (status %d)", method, path, env.Message, resp.StatusCode)
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}
