package api

import (
	"context"
	"fmt"
	"net/http"

	"sunning/pkg/types"
)

// FundingList fetches the campaign list, optionally filtered by region and
// ordered by params.Align.
func (c *Client) FundingList(ctx context.Context, params types.ListParams) ([]types.FundingListItem, error) {
	query, err := c.encoder.Encode(&params)
	if err != nil {
		return nil, fmt.Errorf("encode list params: %w", err)
	}

	return call[[]types.FundingListItem](ctx, c, request{
		method: http.MethodGet,
		path:   "/funding",
		query:  query,
		want:   http.StatusOK,
	})
}

// FundingDetail fetches a single campaign, including the viewer-relative
// isOwner and isProlongation flags.
func (c *Client) FundingDetail(ctx context.Context, fundingID int64) (types.FundingDetail, error) {
	return call[types.FundingDetail](ctx, c, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/funding/%d", fundingID),
		want:   http.StatusOK,
	})
}

// CreateFunding submits a new campaign. The server answers 201 on success.
func (c *Client) CreateFunding(ctx context.Context, req types.CreateFundingRequest) (types.CreateFundingData, error) {
	return call[types.CreateFundingData](ctx, c, request{
		method: http.MethodPost,
		path:   "/funding",
		body:   req,
		want:   http.StatusCreated,
	})
}

// Donate applies a contribution to a campaign and returns the
// server-confirmed personal and campaign totals.
func (c *Client) Donate(ctx context.Context, fundingID int64, amount int64) (types.DonateData, error) {
	return call[types.DonateData](ctx, c, request{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/funding/%d/donate", fundingID),
		body:   types.DonateRequest{UserFundedMoney: amount},
		want:   http.StatusOK,
	})
}

// Prolong moves a campaign's deadline to the given ISO-8601 date. The server
// allows this once per campaign.
func (c *Client) Prolong(ctx context.Context, fundingID int64, deadline string) (types.ProlongData, error) {
	return call[types.ProlongData](ctx, c, request{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/funding/%d/prolongation", fundingID),
		body:   types.ProlongRequest{DeadlineDate: deadline},
		want:   http.StatusOK,
	})
}

// ParticipatedFundings lists the campaigns the current user has donated to.
func (c *Client) ParticipatedFundings(ctx context.Context) ([]types.ParticipatedFundingItem, error) {
	return call[[]types.ParticipatedFundingItem](ctx, c, request{
		method: http.MethodGet,
		path:   "/funding/participated",
		want:   http.StatusOK,
	})
}
