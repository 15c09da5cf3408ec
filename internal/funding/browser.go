package funding

import (
	"context"
	"sync"

	"sunning/pkg/types"

	"github.com/sirupsen/logrus"
)

// ListAPI is the slice of the API client the browser needs.
type ListAPI interface {
	FundingList(ctx context.Context, params types.ListParams) ([]types.FundingListItem, error)
	UserRegion(ctx context.Context) (types.GetRegionData, error)
	SetUserRegion(ctx context.Context, region types.Region) (types.SetRegionData, error)
}

// Browser owns the filtered campaign list of the home screen. Every filter
// change triggers a fresh full request; nothing is cached or sorted client
// side. While a refresh is in flight the previously displayed set stays on
// screen, and a request-generation counter makes sure a slow stale response
// never overwrites the data of a newer selection.
type Browser struct {
	api    ListAPI
	logger *logrus.Logger

	mu         sync.Mutex
	region     types.Region
	align      types.Align
	items      []types.FundingListItem
	loaded     bool
	refreshing bool
	generation uint64
}

func NewBrowser(api ListAPI, logger *logrus.Logger) *Browser {
	return &Browser{
		api:    api,
		logger: logger,
		region: types.DefaultRegion,
		align:  types.AlignLatest,
	}
}

// LoadSavedRegion adopts the user's server-saved region as the active
// filter. Any failure falls back to the default region and is only logged.
func (b *Browser) LoadSavedRegion(ctx context.Context) {
	data, err := b.api.UserRegion(ctx)
	if err != nil || !data.Region.Valid() {
		b.logger.WithError(err).WithField("fallback", types.DefaultRegion).
			Warn("could not load saved region")
		return
	}

	b.mu.Lock()
	b.region = data.Region
	b.mu.Unlock()
}

// Refresh issues a list request for the current filters. Only the newest
// outstanding request may apply its result; responses from superseded
// requests are discarded.
func (b *Browser) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.generation++
	gen := b.generation
	params := types.ListParams{Region: b.region, Align: b.align}
	b.refreshing = true
	b.mu.Unlock()

	items, err := b.api.FundingList(ctx, params)

	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.generation {
		// A newer request was issued while this one was in flight.
		b.logger.WithFields(logrus.Fields{
			"generation": gen,
			"newest":     b.generation,
		}).Debug("discarding stale list response")
		return nil
	}

	b.refreshing = false
	if err != nil {
		return err
	}

	b.items = items
	b.loaded = true
	return nil
}

// SetRegion changes the region filter, saves it server-side best-effort,
// and refreshes the list.
func (b *Browser) SetRegion(ctx context.Context, region types.Region) error {
	if !region.Valid() {
		return &types.ValidationError{Field: "region", Message: "unknown region"}
	}

	b.mu.Lock()
	b.region = region
	b.mu.Unlock()

	// The saved-region update is fire-and-forget; a failure never blocks
	// the list refresh.
	if _, err := b.api.SetUserRegion(ctx, region); err != nil {
		b.logger.WithError(err).WithField("region", region).Warn("could not save region preference")
	}

	return b.Refresh(ctx)
}

// SetAlign changes the sort order and refreshes the list.
func (b *Browser) SetAlign(ctx context.Context, align types.Align) error {
	b.mu.Lock()
	b.align = align
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// Items returns the currently displayed set, possibly stale while a
// refresh is in flight.
func (b *Browser) Items() []types.FundingListItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items
}

func (b *Browser) Region() types.Region {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.region
}

func (b *Browser) Align() types.Align {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.align
}

// Refreshing reports whether a request is in flight. Screens show a
// blocking indicator only before the first load; afterwards the indicator
// is non-blocking on top of the stale set.
func (b *Browser) Refreshing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refreshing
}

// Loaded reports whether at least one list response has been applied.
func (b *Browser) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}
