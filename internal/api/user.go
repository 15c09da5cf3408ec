package api

import (
	"context"
	"fmt"
	"net/http"

	"sunning/pkg/types"
)

// Login exchanges credentials for a session token. Unauthenticated.
func (c *Client) Login(ctx context.Context, credentials types.LoginRequest) (types.LoginData, error) {
	return call[types.LoginData](ctx, c, request{
		method: http.MethodPost,
		path:   "/users/login",
		body:   credentials,
		want:   http.StatusOK,
		noAuth: true,
	})
}

// UserRegion reads the current user's saved region.
func (c *Client) UserRegion(ctx context.Context) (types.GetRegionData, error) {
	return call[types.GetRegionData](ctx, c, request{
		method: http.MethodGet,
		path:   "/users/region",
		want:   http.StatusOK,
	})
}

// SetUserRegion updates the current user's saved region.
func (c *Client) SetUserRegion(ctx context.Context, region types.Region) (types.SetRegionData, error) {
	return call[types.SetRegionData](ctx, c, request{
		method: http.MethodPatch,
		path:   "/users/region",
		body:   types.SetRegionRequest{Region: region},
		want:   http.StatusOK,
	})
}

// MyCreatedFundings lists fundings created by the current user.
func (c *Client) MyCreatedFundings(ctx context.Context) ([]types.CreatedFundingItem, error) {
	return call[[]types.CreatedFundingItem](ctx, c, request{
		method: http.MethodGet,
		path:   "/users/fundings",
		want:   http.StatusOK,
	})
}

// CreatedFundingsByUser lists fundings created by the given user.
func (c *Client) CreatedFundingsByUser(ctx context.Context, userID string) ([]types.CreatedFundingItem, error) {
	return call[[]types.CreatedFundingItem](ctx, c, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/users/%s/fundings", userID),
		want:   http.StatusOK,
	})
}
