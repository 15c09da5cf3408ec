package types

// MagazineItem is an editorial entry from GET /magazines/list. The endpoint
// is unauthenticated.
type MagazineItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	PhotoURL  string `json:"photoUrl"`
	Link      string `json:"link"`
	CreatedAt string `json:"createdAt"`
}

// Subtitle is the display name the app uses for the body field.
func (m MagazineItem) Subtitle() string {
	return m.Body
}
