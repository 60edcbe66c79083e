package tui

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/studiowebux/replydesk/internal/client"
	"github.com/studiowebux/replydesk/internal/types"
)

const timeoutHint = "Request timeout - the backend took too long, try increasing server.timeout (default: 60s)"

// failureText returns the text shown after "Error: " for a failed call.
// Backend errors show their JSON message, or fallback when the body had none.
// Transport errors are categorized.
func failureText(err error, fallback string) string {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	if text := categorizeError(err); text != "" {
		return text
	}
	return fallback
}

// categorizeRequestError analyzes error strings from HTTP requests and provides
// actionable, user-friendly error messages based on the error type.
func categorizeRequestError(errStr string) string {
	if errStr == "" {
		return ""
	}

	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "context canceled") ||
		strings.Contains(errLower, "context cancelled") {
		return "Request cancelled"
	}

	if strings.Contains(errLower, "context deadline exceeded") ||
		strings.Contains(errLower, "deadline exceeded") {
		return timeoutHint
	}

	// Proxy errors (check before connection errors since proxy errors often contain "connection refused")
	if strings.Contains(errLower, "proxy") {
		return "Proxy connection failed - verify HTTP_PROXY/HTTPS_PROXY settings"
	}

	if strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "dns") ||
		strings.Contains(errLower, "dial tcp: lookup") {
		return "DNS resolution failed - verify server.url and that the network is available"
	}

	if strings.Contains(errLower, "connection refused") {
		return "Connection refused - check that the backend is running and server.url is correct"
	}

	if strings.Contains(errLower, "connection reset") {
		return "Connection reset by server - the backend may have crashed or the network dropped"
	}

	if strings.Contains(errLower, "network is unreachable") ||
		strings.Contains(errLower, "no route to host") {
		return "Network unreachable - check network connection and firewall settings"
	}

	if strings.Contains(errLower, "tls") ||
		strings.Contains(errLower, "ssl") ||
		strings.Contains(errLower, "certificate") ||
		strings.Contains(errLower, "x509") {
		return categorizeSSLError(errStr)
	}

	if strings.Contains(errLower, "invalid url") ||
		strings.Contains(errLower, "unsupported protocol") {
		return "Invalid URL - verify server.url uses http or https"
	}

	if strings.Contains(errLower, "eof") {
		return "Connection closed unexpectedly - the backend terminated the connection"
	}

	if strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "timed out") {
		return timeoutHint
	}

	if strings.Contains(errLower, "failed to decode response") {
		return "Unexpected response from the backend - is server.url pointing at the email assistant?"
	}

	return "Request failed: " + errStr
}

// categorizeSSLError provides specific guidance for TLS/SSL certificate errors
func categorizeSSLError(errStr string) string {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "unknown authority") ||
		strings.Contains(errLower, "certificate is not trusted") {
		return "TLS certificate verification failed - set server.ca_file or server.insecure_skip_verify"
	}

	if strings.Contains(errLower, "expired") {
		return "TLS certificate has expired - contact the server administrator"
	}

	if strings.Contains(errLower, "certificate is valid for") ||
		strings.Contains(errLower, "doesn't match") {
		return "TLS hostname mismatch - certificate doesn't match server.url"
	}

	if strings.Contains(errLower, "handshake") {
		return "TLS handshake failed - check TLS version compatibility"
	}

	return "TLS/SSL error - check certificate configuration: " + errStr
}

// categorizeError is a helper that wraps categorizeRequestError for use with Go error types.
// It handles nil errors and unwraps the error chain to get the root cause.
func categorizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, client.ErrUnauthorized) {
		return "Not logged in or session expired - set auth.username and auth.password, then restart"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutHint
	}
	if errors.Is(err, context.Canceled) {
		return "Request cancelled"
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return timeoutHint
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if text := categorizeNetError(opErr); text != "" {
			return text
		}
	}

	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return "TLS certificate signed by unknown authority - set server.ca_file or server.insecure_skip_verify"
	}

	var invalidCert x509.CertificateInvalidError
	if errors.As(err, &invalidCert) {
		return "TLS certificate is invalid: " + invalidCert.Error()
	}

	return categorizeRequestError(err.Error())
}

// categorizeNetError maps syscall errors; "" when nothing specific applies
func categorizeNetError(e *net.OpError) string {
	if e.Timeout() {
		return "Connection timeout - the backend took too long to respond"
	}

	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED:
			return "Connection refused - check that the backend is running and server.url is correct"
		case syscall.ECONNRESET:
			return "Connection reset by server - the backend may have crashed or the network dropped"
		case syscall.ENETUNREACH:
			return "Network unreachable - check network connection and firewall settings"
		case syscall.EHOSTUNREACH:
			return "Host unreachable - check that the backend host is online"
		}
	}

	return ""
}
