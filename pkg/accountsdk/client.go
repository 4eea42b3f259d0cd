package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the accounts service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new accounts service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUp registers a new account. Validation failures return
// *ValidationError; other failures return *APIError.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	var out SignUpResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/sign-up", req, "", http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges an email/password pair for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/login", req, "", http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the authenticated account's profile.
func (c *Client) Me(ctx context.Context, token string) (*MeResponse, error) {
	var out MeResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/me", nil, token, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks whether the service is running.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, "", http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks whether the service and its dependencies are ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, "", http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJWKS fetches the service's public signing keys.
func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	var out JWKSResponse
	if err := c.doJSON(ctx, http.MethodGet, "/.well-known/jwks.json", nil, "", http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON performs a JSON request/response round trip. A nil body sends no
// payload; a non-empty token is sent as a Bearer credential.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	token string,
	wantStatus int,
	out any,
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return parseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
