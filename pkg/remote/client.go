package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"moviehub/pkg/metrics"
	"moviehub/pkg/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const redacted = "[REDACTED]"

// HTTPIface interface untuk abstraction upstream catalog
type HTTPIface interface {
	// Get issues exactly one GET against the catalog. endpoint is a stable
	// name used for logs and metrics, path is relative to the base URL.
	Get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, error)
}

// Client wraps a resty client bound to one base URL and one credential.
type Client struct {
	http   *resty.Client
	secret string
	log    *zap.Logger
}

// InitClient membuat client ke catalog API
func InitClient(config utils.TMDBConfig, log *zap.Logger) (HTTPIface, error) {
	base := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if base == "" {
		return nil, errors.New("catalog base url is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parse catalog base url: %w", err)
	}

	c := &Client{
		secret: config.APIKey,
		log:    log.With(zap.String("component", "remote")),
	}

	rc := resty.New().
		SetBaseURL(base).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetLogger(&restyLogger{log: c.log.Sugar(), redact: c.redact})

	// The credential travels as a query parameter on every call.
	if config.APIKey != "" {
		rc.SetQueryParam("api_key", config.APIKey)
	} else {
		c.log.Warn("Catalog API credential is not configured")
	}

	if config.Timeout > 0 {
		rc.SetTimeout(config.Timeout)
	}

	c.http = rc
	return c, nil
}

// Get implements HTTPIface
func (c *Client) Get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, error) {
	start := time.Now()

	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveUpstream(endpoint, "transport_error", elapsed)
		terr := &TransportError{Endpoint: endpoint, Err: c.scrub(err)}
		c.log.Warn("Catalog request failed",
			zap.String("endpoint", endpoint),
			zap.String("path", path),
			zap.Duration("duration", elapsed),
			zap.Error(terr),
		)
		return nil, terr
	}

	if !resp.IsSuccess() {
		metrics.ObserveUpstream(endpoint, "remote_error", elapsed)
		rerr := &RemoteError{
			Endpoint: endpoint,
			Status:   resp.StatusCode(),
			Message:  c.redact(statusMessage(resp.Body())),
		}
		c.log.Warn("Catalog returned non-success status",
			zap.String("endpoint", endpoint),
			zap.String("path", path),
			zap.Int("status", rerr.Status),
			zap.Duration("duration", elapsed),
		)
		return nil, rerr
	}

	metrics.ObserveUpstream(endpoint, "ok", elapsed)
	c.log.Debug("Catalog request completed",
		zap.String("endpoint", endpoint),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(resp.Body())),
		zap.Duration("duration", elapsed),
	)

	return resp.Body(), nil
}

// scrub drops the request URL (which carries the credential) from transport
// errors and masks any remaining occurrence of the secret.
func (c *Client) scrub(err error) error {
	cause := err
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		cause = uerr.Err
	}
	if c.secret != "" && strings.Contains(cause.Error(), c.secret) {
		return errors.New(c.redact(cause.Error()))
	}
	return cause
}

func (c *Client) redact(s string) string {
	if c.secret == "" {
		return s
	}
	return strings.ReplaceAll(s, c.secret, redacted)
}

// statusMessage extracts the catalog's status_message from an error body.
func statusMessage(body []byte) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.StatusMessage
}

// restyLogger routes resty's own diagnostics into zap with the secret masked.
type restyLogger struct {
	log    *zap.SugaredLogger
	redact func(string) string
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(l.redact(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(l.redact(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(l.redact(fmt.Sprintf(format, v...)))
}
