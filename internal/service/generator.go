package service

import (
	"errors"

	"github.com/passcheck/passcheck-go/internal/crypto"
	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/strength"
)

// MaxGenerateLength caps API-requested lengths. The core generator has no
// upper bound; this is service policy.
const MaxGenerateLength = 1024

var ErrLengthTooLong = errors.New("password length must be at most 1024")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: crypto.NewGenerator()}
}

// Generate produces a password for the given request. A zero length falls
// back to the default; lengths below the structural minimum are clamped by
// the generator itself. The response carries the evaluator's rating of the
// fresh password as a sanity check.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = crypto.DefaultLength
	}
	if length > MaxGenerateLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := s.gen.Generate(length)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Rating:   strength.Evaluate(password).Rating,
	}, nil
}
