package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware decorates every outbound call.
type Middleware func(next Doer) Doer

// Chain wraps base so that mws[0] runs first.
func Chain(base Doer, mws ...Middleware) Doer {
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// Reporter receives each failed call once, before the error goes back to the caller.
type Reporter interface {
	Report(ctx context.Context, req *http.Request, err *Error)
}

type tokenKey struct{}

// WithToken stores the session token outbound calls authenticate with.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// BearerAuth attaches "Authorization: Bearer <token>" when the context holds a token.
func BearerAuth() Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			token := TokenFromContext(req.Context())
			if token == "" {
				return next.Do(req)
			}
			authReq := req.Clone(req.Context())
			authReq.Header.Set("Authorization", "Bearer "+token)
			return next.Do(authReq)
		})
	}
}

// ErrorMapping turns transport failures and non-2xx responses into *Error, reports
// them and hands them back. Successful responses pass through untouched.
func ErrorMapping(reporter Reporter) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.Do(req)
			if err != nil {
				gerr := newTransportError(req, err)
				// A caller that went away is not the API being unreachable.
				if req.Context().Err() == nil && reporter != nil {
					reporter.Report(req.Context(), req, gerr)
				}
				return nil, gerr
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}

			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			_ = resp.Body.Close()

			gerr := newStatusError(req, resp.StatusCode, body)
			if reporter != nil {
				reporter.Report(req.Context(), req, gerr)
			}
			return nil, gerr
		})
	}
}

func Logging(logger *slog.Logger) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.Do(req)

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				if ge, ok := AsError(err); ok {
					attrs = append(attrs,
						slog.Int("status_code", ge.Status),
						slog.String("category", string(ge.Category)),
					)
				}
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(req.Context(), slog.LevelWarn, "API call failed", attrs...)
				return nil, err
			}

			attrs = append(attrs, slog.Int("status_code", resp.StatusCode))
			logger.LogAttrs(req.Context(), slog.LevelDebug, "API call completed", attrs...)
			return resp, nil
		})
	}
}
