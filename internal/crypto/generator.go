package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// The four character classes are pairwise disjoint; their concatenation is
// the full generation alphabet.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	allChars = LowercaseChars + UppercaseChars + DigitChars + SymbolChars

	// DefaultLength is the password length used when the caller does not ask
	// for a specific one.
	DefaultLength = 12

	// minGeneratedLength is the structural floor: one character from each of
	// the four classes. Shorter requests are clamped, not rejected.
	minGeneratedLength = 4
)

// Generator produces cryptographically secure random passwords. Construct
// with NewGenerator; the zero value has no randomness source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand. It is safe for
// concurrent use; each call works on its own local buffer.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// Generate creates a random password of the given length. Lengths below 4
// are clamped to 4 so the result can contain one character from every class.
// There is no upper bound here; callers enforce their own limits.
//
// The result always contains at least one lowercase letter, one uppercase
// letter, one digit and one symbol, at positions made unpredictable by a
// uniform shuffle. An error is returned only if the randomness source fails,
// in which case no password is produced.
func (g *Generator) Generate(length int) (string, error) {
	if length < minGeneratedLength {
		length = minGeneratedLength
	}

	result := make([]byte, length)

	// One character from each class guarantees complexity.
	for i, charset := range [...]string{LowercaseChars, UppercaseChars, DigitChars, SymbolChars} {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full alphabet, independently per
	// draw.
	for i := minGeneratedLength; i < length; i++ {
		ch, err := g.randChar(allChars)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Shuffle so the four guaranteed characters are not clustered at the
	// front.
	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// Generate creates a password using the default crypto/rand-backed generator.
func Generate(length int) (string, error) {
	return NewGenerator().Generate(length)
}

// randChar picks one character uniformly at random from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := rand.Int(g.rand, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("reading random index: %w", err)
	}
	return charset[n.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle. Every permutation of data is
// equally likely.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(g.rand, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("reading random index: %w", err)
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
