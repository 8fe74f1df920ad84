package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sharnika-sree/autoscribe/internal/client/models"
	"github.com/Sharnika-sree/autoscribe/internal/common"
)

const defaultTimeout = 10 * time.Second

// HTTPClient talks to the remote auth endpoint: POST {base}/auth/login with
// a JSON credential body, {token,user} on 2xx, {message} on error status.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given API base URL (for example
// "http://localhost:5000/api"). A nil hc gets a default with a timeout.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  models.StoredUser `json:"user"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string, role models.Role) (*models.LoginResult, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password, Role: string(role)})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.mapError(resp)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("%w: decoding login response: %v", common.ErrUnavailable, err)
	}

	return &models.LoginResult{Token: lr.Token, User: lr.User.Record()}, nil
}

// mapError converts an error-status response into an AuthError carrying the
// server's message when the body had one. An undecodable body still yields
// an AuthError, just with the generic message.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var er errorResponse
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
		_ = json.Unmarshal(b, &er)
	}
	return &AuthError{Message: er.Message}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}
