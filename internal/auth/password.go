package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier checks a supplied password against a stored value.
// Two strategies exist: bcrypt for hashed storage and direct comparison for
// legacy plaintext rows that predate hashing. The legacy path stays only so
// old accounts keep working; nothing in this codebase writes plaintext.
type PasswordVerifier interface {
	Verify(stored, supplied string) error
}

// bcrypt encodes its algorithm version in the leading tag, e.g. $2a$10$...
var bcryptMarkers = []string{"$2a$", "$2b$", "$2y$"}

// IsHashed classifies a stored password value by its format tag.
func IsHashed(stored string) bool {
	for _, marker := range bcryptMarkers {
		if strings.HasPrefix(stored, marker) {
			return true
		}
	}
	return false
}

// VerifierFor selects the verification strategy for a stored value.
func VerifierFor(stored string) PasswordVerifier {
	if IsHashed(stored) {
		return bcryptVerifier{}
	}
	return plaintextVerifier{}
}

// VerifyPassword checks supplied against stored using the strategy the stored
// value's format calls for. Returns bcrypt.ErrMismatchedHashAndPassword on
// mismatch in either path.
func VerifyPassword(stored, supplied string) error {
	return VerifierFor(stored).Verify(stored, supplied)
}

type bcryptVerifier struct{}

func (bcryptVerifier) Verify(stored, supplied string) error {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied))
}

type plaintextVerifier struct{}

func (plaintextVerifier) Verify(stored, supplied string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return nil
}

// HashPassword creates a bcrypt hash of the password. All new credential
// writes go through this.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
