package model

// EvaluateRequest represents a password strength evaluation request.
type EvaluateRequest struct {
	Password string `json:"password"`
}

// EvaluateResponse represents the outcome of a strength evaluation. Feedback
// lines are ordered: length, lowercase, uppercase, digit, symbol.
type EvaluateResponse struct {
	Rating   string   `json:"rating"`
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
}
