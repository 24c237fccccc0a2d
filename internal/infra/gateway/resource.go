package gateway

import (
	"context"
	"log/slog"
	"net/http"
)

// Resource is the CRUD surface one API collection exposes. Res is the response body.
type Resource[Res any] struct {
	client  *Client
	baseURL string
	name    string
}

func NewResource[Res any](client *Client, baseURL, name string) *Resource[Res] {
	return &Resource[Res]{
		client:  client,
		baseURL: baseURL,
		name:    name,
	}
}

func (r *Resource[Res]) URL(segments ...string) string {
	return joinURL(r.baseURL, segments...)
}

// List never fails: any error is logged and degrades to an empty result so the view
// has nothing to show rather than an error to handle.
func (r *Resource[Res]) List(ctx context.Context) []Res {
	var out []Res
	if err := r.client.Call(ctx, http.MethodGet, r.URL(), nil, &out); err != nil {
		r.client.logger.WarnContext(ctx, "list failed, showing empty result",
			slog.String("resource", r.name),
			slog.String("error", err.Error()),
		)
		return []Res{}
	}
	if out == nil {
		return []Res{}
	}
	return out
}

func (r *Resource[Res]) Get(ctx context.Context, segments ...string) (*Res, error) {
	var out Res
	if err := r.client.Call(ctx, http.MethodGet, r.URL(segments...), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[Res]) Create(ctx context.Context, body any) (*Res, error) {
	var out Res
	if err := r.client.Call(ctx, http.MethodPost, r.URL(), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[Res]) Update(ctx context.Context, key string, body any) (*Res, error) {
	var out Res
	if err := r.client.Call(ctx, http.MethodPut, r.URL(key), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch sends body to a sub-path of the collection and ignores the response body.
func (r *Resource[Res]) Patch(ctx context.Context, body any, segments ...string) error {
	return r.client.Call(ctx, http.MethodPatch, r.URL(segments...), body, nil)
}

func (r *Resource[Res]) Delete(ctx context.Context, key string) error {
	return r.client.Call(ctx, http.MethodDelete, r.URL(key), nil, nil)
}
