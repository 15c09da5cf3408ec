package types

// Align is the server-side sort order for funding lists.
type Align string

const (
	AlignLatest Align = "latest" // most recently created first
	AlignRate   Align = "rate"   // highest achievement rate first
)

// ListParams are the query parameters of GET /funding. Both are optional;
// omitted values mean no filtering/default order.
type ListParams struct {
	Region Region `form:"region,omitempty"`
	Align  Align  `form:"align,omitempty"`
}

type FundingUser struct {
	UserID string `json:"userId"`
	Region Region `json:"region"`
}

type FundingListItem struct {
	FundingID       int64       `json:"fundingId"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	PhotoURL        string      `json:"photoUrl"`
	Region          Region      `json:"region"`
	DetailAddress   string      `json:"detailAddress"`
	GoalMoney       int64       `json:"goalMoney"`
	FundedMoney     int64       `json:"fundedMoney"`
	AchievementRate int         `json:"achievementRate"`
	DeadlineDate    string      `json:"deadlineDate"`
	CompleteDueDate string      `json:"completeDueDate"`
	IsOpen          bool        `json:"isOpen"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
	User            FundingUser `json:"user"`
}

type FundingDetail struct {
	FundingID       int64  `json:"fundingId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	PhotoURL        string `json:"photoUrl"`
	Region          Region `json:"region"`
	DetailAddress   string `json:"detailAddress"`
	GoalMoney       int64  `json:"goalMoney"`
	FundedMoney     int64  `json:"fundedMoney"`
	Rate            int    `json:"rate"`
	FunderCount     int    `json:"funderCount"`
	DeadlineDate    string `json:"deadlineDate"`
	CompleteDueDate string `json:"completeDueDate"`
	IsOpen          bool   `json:"isOpen"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
	IsOwner         bool   `json:"isOwner"`
	IsProlongation  bool   `json:"isProlongation"`
}

type CreateFundingRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	GoalMoney        int64  `json:"goalMoney"`
	DeadlineDate     string `json:"deadlineDate"`    // ISO-8601
	CompleteDueDate  string `json:"completeDueDate"` // ISO-8601
	Region           Region `json:"region"`
	DetailAddress    string `json:"detailAddress"`
	PhotoURL         string `json:"photoUrl"`
	PrivacyAgreement bool   `json:"privacyAgreement"`
}

type CreateFundingData struct {
	FundingID int64  `json:"fundingId"`
	Title     string `json:"title"`
}

type DonateRequest struct {
	UserFundedMoney int64 `json:"userFundedMoney"`
}

type DonateData struct {
	FundingID           int64 `json:"fundingId"`
	UserID              int64 `json:"userId"`
	NewUserFundedMoney  int64 `json:"newUserFundedMoney"`
	UpdatedFundingTotal int64 `json:"updatedFundingTotal"`
}

type ProlongRequest struct {
	DeadlineDate string `json:"deadlineDate"` // ISO-8601
}

type ProlongData struct {
	FundingID    int64  `json:"fundingId"`
	DeadlineDate string `json:"deadlineDate"`
}

// ParticipatedFundingItem is a funding the current user donated to, as
// returned by GET /funding/participated.
type ParticipatedFundingItem struct {
	FundingID       int64  `json:"fundingId"`
	Title           string `json:"title"`
	PhotoURL        string `json:"photoUrl"`
	Region          Region `json:"region"`
	DetailAddress   string `json:"detailAddress"`
	GoalMoney       int64  `json:"goalMoney"`
	FundedMoney     int64  `json:"fundedMoney"`
	DeadlineDate    string `json:"deadlineDate"`
	CompleteDueDate string `json:"completeDueDate"`
	UserFundedMoney int64  `json:"userFundedMoney"`
}
