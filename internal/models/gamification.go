package models

// TimeSlot is a bookable window in a mentor's availability
type TimeSlot struct {
	ID     string `json:"id"`
	Day    string `json:"day"`
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// Badge is an achievement a mentee can earn
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

// RankingEntry is one row on the points leaderboard
type RankingEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	IsUser bool   `json:"isUser"`
}

// ReportMetric is a single figure on the admin reports page
type ReportMetric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
}

// BugReportRequest is the payload for filing a platform bug report
type BugReportRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}
