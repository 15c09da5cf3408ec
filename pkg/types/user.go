package types

type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type LoginData struct {
	UserID       string `json:"userId"`
	Region       Region `json:"region"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	IsOnboarded  bool   `json:"isOnboarded"`
}

type SetRegionRequest struct {
	Region Region `json:"region"`
}

type SetRegionData struct {
	UserID string `json:"userId,omitempty"`
	Region Region `json:"region"`
}

type GetRegionData struct {
	Region Region `json:"region"`
}

// CreatedFundingItem is a funding created by a user, as returned by
// GET /users/fundings and GET /users/{id}/fundings.
type CreatedFundingItem struct {
	FundingID       int64  `json:"fundingId"`
	Title           string `json:"title"`
	PhotoURL        string `json:"photoUrl"`
	Region          Region `json:"region"`
	DetailAddress   string `json:"detailAddress"`
	DeadlineDate    string `json:"deadlineDate"`
	CompleteDueDate string `json:"completeDueDate"`
	GoalMoney       int64  `json:"goalMoney"`
	FundedMoney     int64  `json:"fundedMoney"`
	IsOpen          bool   `json:"isOpen"`
}
