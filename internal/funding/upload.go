// Package funding holds the screen-level business logic of the app: the
// campaign submission form, the detail screen with donation and
// prolongation, and the filtered campaign browser.
package funding

import (
	"context"
	"strconv"
	"strings"
	"time"

	"sunning/pkg/types"

	"github.com/sirupsen/logrus"
)

const (
	MaxTitleLen   = 10
	MaxAddressLen = 30
	MaxMessageLen = 500
	MaxGoalMoney  = 9_999_999_999

	// DefaultPhotoURL is the fixed thumbnail used when no photo is attached.
	DefaultPhotoURL = "https://i.pinimg.com/736x/16/00/18/160018ba1bdc0c187df283f6b080814c.jpg"
)

// Creator is the slice of the API client the upload form needs.
type Creator interface {
	CreateFunding(ctx context.Context, req types.CreateFundingRequest) (types.CreateFundingData, error)
}

// UploadForm carries the user-entered fields of the campaign creation
// screen. Zero value is the initial empty form.
type UploadForm struct {
	Title          string
	Region         types.Region
	DetailAddress  string
	Deadline       *time.Time
	CompletionDate *time.Time
	GoalAmount     string // numeric string as typed
	Message        string
	PrivacyAgreed  bool
	PhotoURL       string

	uploading bool
}

// Validate checks the fields in screen order and returns the first violated
// rule, or nil when the form is submittable. The cross-field date rule is
// reported only after every individual field passes.
func (f *UploadForm) Validate() *types.ValidationError {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return &types.ValidationError{Field: "title", Message: "enter a funding title"}
	}
	if len([]rune(title)) > MaxTitleLen {
		return &types.ValidationError{Field: "title", Message: "funding title must be at most 10 characters"}
	}

	if !f.Region.Valid() {
		return &types.ValidationError{Field: "region", Message: "choose an installation region"}
	}

	address := strings.TrimSpace(f.DetailAddress)
	if address == "" {
		return &types.ValidationError{Field: "detailAddress", Message: "enter the detail address"}
	}
	if len([]rune(address)) > MaxAddressLen {
		return &types.ValidationError{Field: "detailAddress", Message: "detail address must be at most 30 characters"}
	}

	if f.Deadline == nil {
		return &types.ValidationError{Field: "deadlineDate", Message: "choose a funding deadline"}
	}
	if f.CompletionDate == nil {
		return &types.ValidationError{Field: "completeDueDate", Message: "choose a completion due date"}
	}

	goal, ok := f.goalMoney()
	if !ok || goal <= 0 {
		return &types.ValidationError{Field: "goalMoney", Message: "enter a valid goal amount"}
	}
	if goal > MaxGoalMoney {
		return &types.ValidationError{Field: "goalMoney", Message: "goal amount is too large"}
	}

	message := strings.TrimSpace(f.Message)
	if message == "" {
		return &types.ValidationError{Field: "description", Message: "enter a message for funders"}
	}
	if len([]rune(message)) > MaxMessageLen {
		return &types.ValidationError{Field: "description", Message: "message must be at most 500 characters"}
	}

	if !f.PrivacyAgreed {
		return &types.ValidationError{Field: "privacyAgreement", Message: "agree to the privacy terms"}
	}

	if !f.CompletionDate.After(*f.Deadline) {
		return &types.ValidationError{Field: "completeDueDate", Message: "completion due date must be after the funding deadline"}
	}

	return nil
}

// Submittable is the cheap all-rules-hold predicate driving submit-button
// enablement. Recomputed on every field change; no ordering, no messages.
func (f *UploadForm) Submittable() bool {
	title := strings.TrimSpace(f.Title)
	address := strings.TrimSpace(f.DetailAddress)
	message := strings.TrimSpace(f.Message)
	goal, ok := f.goalMoney()

	return title != "" &&
		len([]rune(title)) <= MaxTitleLen &&
		f.Region.Valid() &&
		address != "" &&
		len([]rune(address)) <= MaxAddressLen &&
		f.Deadline != nil &&
		f.CompletionDate != nil &&
		ok && goal > 0 && goal <= MaxGoalMoney &&
		message != "" &&
		len([]rune(message)) <= MaxMessageLen &&
		f.PrivacyAgreed &&
		f.CompletionDate.After(*f.Deadline)
}

func (f *UploadForm) goalMoney() (int64, bool) {
	goal, err := strconv.ParseInt(strings.TrimSpace(f.GoalAmount), 10, 64)
	if err != nil {
		return 0, false
	}
	return goal, true
}

// Uploading reports whether a submission is in flight.
func (f *UploadForm) Uploading() bool {
	return f.uploading
}

// Reset returns every field to its initial empty state.
func (f *UploadForm) Reset() {
	*f = UploadForm{}
}

// Submit validates, builds the creation payload, and posts it. On success
// the form is reset; on any failure the fields are preserved unchanged so
// the user can correct and retry.
func (f *UploadForm) Submit(ctx context.Context, api Creator, logger *logrus.Logger) (types.CreateFundingData, error) {
	if f.uploading {
		return types.CreateFundingData{}, types.ErrUploadInFlight
	}
	if verr := f.Validate(); verr != nil {
		return types.CreateFundingData{}, verr
	}

	f.uploading = true
	defer func() { f.uploading = false }()

	goal, _ := f.goalMoney()
	photo := f.PhotoURL
	if photo == "" {
		photo = DefaultPhotoURL
	}

	req := types.CreateFundingRequest{
		Title:            strings.TrimSpace(f.Title),
		Description:      strings.TrimSpace(f.Message),
		GoalMoney:        goal,
		DeadlineDate:     f.Deadline.UTC().Format(time.RFC3339),
		CompleteDueDate:  f.CompletionDate.UTC().Format(time.RFC3339),
		Region:           f.Region,
		DetailAddress:    strings.TrimSpace(f.DetailAddress),
		PhotoURL:         photo,
		PrivacyAgreement: f.PrivacyAgreed,
	}

	data, err := api.CreateFunding(ctx, req)
	if err != nil {
		logger.WithError(err).Error("funding upload failed")
		return types.CreateFundingData{}, err
	}

	logger.WithFields(logrus.Fields{
		"funding_id": data.FundingID,
		"title":      data.Title,
	}).Info("funding uploaded")

	f.uploading = false
	f.Reset()
	return data, nil
}
