package models

import "time"

// Difficulty buckets practice problems for display and filtering
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid checks if the difficulty is a known value
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Problem is a practice exercise from the repository. Problems are
// immutable after seeding.
type Problem struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Difficulty     Difficulty `json:"difficulty"`
	Tags           []string   `json:"tags"`
	Description    string     `json:"description"`
	AcceptanceRate float64    `json:"acceptanceRate"`
	StarterCode    string     `json:"starterCode,omitempty"`
}

// Solution is a transient submission against a problem, never persisted
type Solution struct {
	ID          string    `json:"id"`
	ProblemID   string    `json:"problemId"`
	Code        string    `json:"code"`
	Language    string    `json:"language"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// SubmitSolutionRequest is the payload for submitting a solution
type SubmitSolutionRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
}

// RunCodeRequest is the payload for an AI execution prediction
type RunCodeRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
}

// RunCodeResponse is the predicted outcome of running submitted code
type RunCodeResponse struct {
	Output      string `json:"output"`
	Explanation string `json:"explanation"`
	Mode        string `json:"mode"` // "ai" or "offline"
}
