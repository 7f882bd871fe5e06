package model

// GenerateRequest represents a password generation request. A zero length
// means "use the default".
type GenerateRequest struct {
	Length int `json:"length"`
}

// GenerateResponse represents a password generation response. Rating is the
// generated password run back through the evaluator as a sanity check.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Rating   string `json:"rating"`
}
