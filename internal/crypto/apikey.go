package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidKeyHash      = errors.New("invalid encoded key hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Argon2id parameters for hashing the service API key. The key is verified
// once per token exchange, so the cost can stay moderate.
const (
	keyHashMemory      = 64 * 1024
	keyHashIterations  = 3
	keyHashParallelism = 2
	keyHashSaltLength  = 16
	keyHashLength      = 32
)

// HashKey hashes an API key with Argon2id and returns it in PHC string
// format, suitable for the API_KEY_HASH environment variable. Only the hash
// is ever stored; the plaintext key stays with the operator.
func HashKey(key string) (string, error) {
	salt := make([]byte, keyHashSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(key), salt, keyHashIterations, keyHashMemory, keyHashParallelism, keyHashLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		keyHashMemory,
		keyHashIterations,
		keyHashParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyKey checks a presented API key against a PHC-encoded Argon2id hash
// using a constant-time comparison.
func VerifyKey(key, encodedHash string) (bool, error) {
	salt, hash, memory, iterations, parallelism, err := decodeKeyHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(key), salt, iterations, memory, parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

// decodeKeyHash parses a PHC-formatted Argon2id hash string of the shape
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>.
func decodeKeyHash(encodedHash string) (salt, hash []byte, memory, iterations uint32, parallelism uint8, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		err = ErrInvalidKeyHash
		return
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		err = ErrInvalidKeyHash
		return
	}
	if version != argon2.Version {
		err = ErrIncompatibleVersion
		return
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		err = ErrInvalidKeyHash
		return
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		err = ErrInvalidKeyHash
		return
	}
	if hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		err = ErrInvalidKeyHash
		return
	}

	return
}
