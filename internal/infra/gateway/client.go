package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"hotel-console/internal/pkg/errs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// NewHTTPClient returns the traced client every call goes out through. Spans go to tp.
// No timeout is set here; deadlines come from the caller's context.
func NewHTTPClient(serviceName string, tp trace.TracerProvider) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(
			http.DefaultTransport,
			otelhttp.WithTracerProvider(tp),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return serviceName + " " + r.Method + " " + r.URL.Path
			}),
		),
	}
}

// NewPipeline composes the outbound stages: logging, bearer credential, error mapping.
func NewPipeline(base Doer, reporter Reporter, logger *slog.Logger) Doer {
	return Chain(base,
		Logging(logger),
		BearerAuth(),
		ErrorMapping(reporter),
	)
}

type Client struct {
	doer   Doer
	logger *slog.Logger
}

func NewClient(doer Doer, logger *slog.Logger) *Client {
	return &Client{
		doer:   doer,
		logger: logger,
	}
}

// ErrEmptyBody is returned when a call expects an entity back and the API sent none.
var ErrEmptyBody = errs.New("API answered without a body")

// Call sends in as JSON (when non-nil) and decodes the response into out (when non-nil).
// A response with no body fails with ErrEmptyBody unless out is nil.
func (c *Client) Call(ctx context.Context, method, rawURL string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "read response body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return errs.Wrapf(ErrEmptyBody, "%s %s", method, req.URL.Path)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrapf(err, "decode %s %s response", method, req.URL.Path)
	}
	return nil
}

func joinURL(base string, segments ...string) string {
	u := strings.TrimRight(base, "/")
	for _, s := range segments {
		u += "/" + url.PathEscape(s)
	}
	return u
}
