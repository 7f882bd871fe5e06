package model

// StatsResponse summarizes recorded evaluations: how many candidates landed
// in each rating bucket. Passwords themselves are never stored.
type StatsResponse struct {
	Total  int64            `json:"total"`
	Counts map[string]int64 `json:"counts"`
}
