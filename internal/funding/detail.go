package funding

import (
	"context"
	"sync"
	"time"

	"sunning/internal/utils"
	"sunning/pkg/types"

	"github.com/sirupsen/logrus"
)

// DonationAmount is the fixed contribution applied per donation.
const DonationAmount int64 = 50_000

// ProlongationDays is the one-time deadline extension length.
const ProlongationDays = 30

// DetailAPI is the slice of the API client the detail screen needs.
type DetailAPI interface {
	FundingDetail(ctx context.Context, fundingID int64) (types.FundingDetail, error)
	Donate(ctx context.Context, fundingID int64, amount int64) (types.DonateData, error)
	Prolong(ctx context.Context, fundingID int64, deadline string) (types.ProlongData, error)
}

// Detail owns the state of one campaign detail screen. Funded amounts are
// always replaced with server-confirmed totals, never incremented locally,
// so concurrent donations by other users cannot drift the display.
type Detail struct {
	api    DetailAPI
	logger *logrus.Logger

	fundingID int64

	mu              sync.Mutex
	data            *types.FundingDetail
	isDonating      bool
	isProlonging    bool
	hasParticipated bool
}

func NewDetail(api DetailAPI, logger *logrus.Logger, fundingID int64) *Detail {
	return &Detail{api: api, logger: logger, fundingID: fundingID}
}

// Load fetches the campaign. Replaces any previously loaded state.
func (d *Detail) Load(ctx context.Context) error {
	data, err := d.api.FundingDetail(ctx, d.fundingID)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.data = &data
	d.mu.Unlock()
	return nil
}

// Data returns a copy of the loaded campaign, or nil before Load.
func (d *Detail) Data() *types.FundingDetail {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.data == nil {
		return nil
	}
	out := *d.data
	return &out
}

// HasParticipated reports whether this screen session already donated.
func (d *Detail) HasParticipated() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasParticipated
}

// Progress returns the funded percentage, capped at 100.
func (d *Detail) Progress() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.data == nil {
		return 0
	}
	return utils.AchievementRate(d.data.FundedMoney, d.data.GoalMoney)
}

// Donate applies the fixed contribution. Owners cannot donate to their own
// campaign, a session donates at most once, and a boolean in-flight flag
// keeps a second request from being issued while one is outstanding. On
// success the displayed total becomes exactly the server's
// updatedFundingTotal; on failure nothing changes.
func (d *Detail) Donate(ctx context.Context) (types.DonateData, error) {
	d.mu.Lock()
	switch {
	case d.data == nil:
		d.mu.Unlock()
		return types.DonateData{}, types.ErrNotLoaded
	case d.data.IsOwner:
		d.mu.Unlock()
		return types.DonateData{}, types.ErrOwnerCannotFund
	case d.hasParticipated:
		d.mu.Unlock()
		return types.DonateData{}, types.ErrAlreadyDonated
	case d.isDonating:
		d.mu.Unlock()
		return types.DonateData{}, types.ErrDonationInFlight
	}
	d.isDonating = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.isDonating = false
		d.mu.Unlock()
	}()

	data, err := d.api.Donate(ctx, d.fundingID, DonationAmount)
	if err != nil {
		d.logger.WithError(err).WithField("funding_id", d.fundingID).Error("donation failed")
		return types.DonateData{}, err
	}

	d.mu.Lock()
	d.data.FundedMoney = data.UpdatedFundingTotal
	d.hasParticipated = true
	d.mu.Unlock()

	d.logger.WithFields(logrus.Fields{
		"funding_id": d.fundingID,
		"total":      data.UpdatedFundingTotal,
	}).Info("donation applied")

	return data, nil
}

// Prolong pushes the deadline out by 30 days. Owner-only and once per
// campaign; the server-returned deadline replaces the local one.
func (d *Detail) Prolong(ctx context.Context) (types.ProlongData, error) {
	d.mu.Lock()
	switch {
	case d.data == nil:
		d.mu.Unlock()
		return types.ProlongData{}, types.ErrNotLoaded
	case !d.data.IsOwner:
		d.mu.Unlock()
		return types.ProlongData{}, types.ErrNotOwner
	case d.data.IsProlongation:
		d.mu.Unlock()
		return types.ProlongData{}, types.ErrAlreadyProlonged
	case d.isProlonging:
		d.mu.Unlock()
		return types.ProlongData{}, types.ErrProlongInFlight
	}
	d.isProlonging = true
	current := d.data.DeadlineDate
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.isProlonging = false
		d.mu.Unlock()
	}()

	deadline, err := utils.ParseAPIDate(current)
	if err != nil {
		return types.ProlongData{}, err
	}
	newDeadline := deadline.AddDate(0, 0, ProlongationDays).UTC().Format(time.RFC3339)

	data, err := d.api.Prolong(ctx, d.fundingID, newDeadline)
	if err != nil {
		d.logger.WithError(err).WithField("funding_id", d.fundingID).Error("prolongation failed")
		return types.ProlongData{}, err
	}

	d.mu.Lock()
	d.data.DeadlineDate = data.DeadlineDate
	d.data.IsProlongation = true
	d.mu.Unlock()

	d.logger.WithFields(logrus.Fields{
		"funding_id": d.fundingID,
		"deadline":   data.DeadlineDate,
	}).Info("funding prolonged")

	return data, nil
}
