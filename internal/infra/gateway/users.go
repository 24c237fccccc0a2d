package gateway

import (
	"context"
	"strconv"

	"hotel-console/internal/domain/user"
	"hotel-console/internal/infra/converter"
	"hotel-console/internal/infra/gateway/wire"
)

// UserClient talks to the admin-scoped operator account collection.
type UserClient struct {
	res *Resource[wire.UsuarioResponse]
}

func NewUserClient(client *Client, baseURL string) *UserClient {
	return &UserClient{res: NewResource[wire.UsuarioResponse](client, baseURL, "usuarios")}
}

func (c *UserClient) List(ctx context.Context) []*user.User {
	return converter.UsersFromWire(c.res.List(ctx))
}

func (c *UserClient) Get(ctx context.Context, id int64) (*user.User, error) {
	r, err := c.res.Get(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	return converter.UserFromWire(*r), nil
}

func (c *UserClient) Create(ctx context.Context, d user.Draft) (*user.User, error) {
	r, err := c.res.Create(ctx, converter.UserToWire(d))
	if err != nil {
		return nil, err
	}
	return converter.UserFromWire(*r), nil
}

// Update addresses the account by id or by username; the API accepts both.
func (c *UserClient) Update(ctx context.Context, key string, d user.Draft) (*user.User, error) {
	r, err := c.res.Update(ctx, key, converter.UserToWire(d))
	if err != nil {
		return nil, err
	}
	return converter.UserFromWire(*r), nil
}

func (c *UserClient) Delete(ctx context.Context, key string) error {
	return c.res.Delete(ctx, key)
}
