package api

import (
	"context"
	"net/http"

	"sunning/pkg/types"
)

// Magazines fetches the editorial content list. The endpoint requires no
// authentication, so no token is attached.
func (c *Client) Magazines(ctx context.Context) ([]types.MagazineItem, error) {
	return call[[]types.MagazineItem](ctx, c, request{
		method: http.MethodGet,
		path:   "/magazines/list",
		want:   http.StatusOK,
		noAuth: true,
	})
}
