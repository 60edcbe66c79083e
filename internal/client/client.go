package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/studiowebux/replydesk/internal/types"
)

// DefaultTimeout bounds every request when Options.Timeout is zero
const DefaultTimeout = 60 * time.Second

var (
	// ErrUnauthorized means the backend bounced the request to its login page
	ErrUnauthorized = errors.New("not logged in or session expired")

	// ErrInvalidCredentials means the login form was rejected
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// TLSConfig configures server verification
type TLSConfig struct {
	InsecureSkipVerify bool
	CAFile             string
}

// Options configures a Client
type Options struct {
	BaseURL string
	Timeout time.Duration
	TLS     *TLSConfig
	Logger  *zap.Logger
}

// Client talks to the email assistant backend
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

// New builds a client for the backend at opts.BaseURL
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", opts.BaseURL)
	}

	httpClient, err := buildHTTPClient(opts.TLS, opts.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to configure HTTP client: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		logger:  logger.Named("client"),
	}, nil
}

// buildHTTPClient creates an HTTP client with a session cookie jar and optional TLS configuration.
// Redirects are not followed: the backend answers unauthenticated calls with a
// redirect to /login, which must surface as ErrUnauthorized instead of an HTML page.
func buildHTTPClient(tlsConfig *TLSConfig, timeout time.Duration) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if tlsConfig != nil {
		tlsCfg := &tls.Config{
			InsecureSkipVerify: tlsConfig.InsecureSkipVerify,
		}

		// Load CA certificate if provided (for server verification)
		if tlsConfig.CAFile != "" {
			caCert, err := os.ReadFile(tlsConfig.CAFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read CA certificate: %w", err)
			}
			caCertPool := x509.NewCertPool()
			if !caCertPool.AppendCertsFromPEM(caCert) {
				return nil, fmt.Errorf("failed to parse CA certificate")
			}
			tlsCfg.RootCAs = caCertPool
		}

		transport.TLSClientConfig = tlsCfg
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		Jar:       jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}, nil
}

// BaseURL returns the backend root
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path
	u.RawQuery = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends a JSON request and decodes a JSON response into out (when non-nil)
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var bodyReader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("size", len(bodyBytes)))

	if isLoginRedirect(resp) || resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if !IsSuccessStatus(resp.StatusCode) {
		return decodeAPIError(resp.StatusCode, bodyBytes)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError builds an APIError, taking the message from the JSON "error" field when present
func decodeAPIError(status int, body []byte) *types.APIError {
	apiErr := &types.APIError{Status: status}
	var eb types.ErrorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Message = eb.Error
	}
	return apiErr
}

func isLoginRedirect(resp *http.Response) bool {
	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return false
	}
	loc, err := resp.Location()
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.TrimRight(loc.Path, "/"), "/login")
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// ErrorMessage returns the server-provided message of an APIError, or fallback
// for any other error shape (including an APIError without a message).
func ErrorMessage(err error, fallback string) string {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
