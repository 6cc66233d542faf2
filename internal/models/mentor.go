package models

// Mentor is a catalog entry shown to mentees searching for help.
// MatchScore and MatchReason are transient, set only on match results.
type Mentor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Company    string   `json:"company,omitempty"`
	AvatarURL  string   `json:"avatarUrl,omitempty"`
	Skills     []string `json:"skills"`
	HourlyRate int      `json:"hourlyRate"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	IsOnline   bool     `json:"isOnline"`

	MatchScore  int    `json:"matchScore,omitempty"`
	MatchReason string `json:"matchReason,omitempty"`
}

// MatchSearchRequest is the payload for AI-assisted mentor matching
type MatchSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// MatchSearchResponse returns ranked mentors and which engine produced them
type MatchSearchResponse struct {
	Mentors []Mentor `json:"mentors"`
	Mode    string   `json:"mode"` // "ai" or "offline"
}
