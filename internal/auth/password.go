package auth

import (
	"strconv"
	"unicode/utf16"

	"golang.org/x/crypto/bcrypt"
)

// Hasher derives and verifies stored password values. The store never sees
// plaintext beyond this boundary.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(stored, plain string) bool
}

// LegacyHasher reproduces the storefront's original 32-bit rolling checksum
// (h = h*31 + codeUnit over UTF-16 code units, decimal string output). It is
// NOT a secure hash; it exists only so data exported from the legacy app
// keeps authenticating. Never use it to guard real accounts.
type LegacyHasher struct{}

func (LegacyHasher) Hash(password string) (string, error) {
	var h int32
	for _, unit := range utf16.Encode([]rune(password)) {
		h = (h << 5) - h + int32(unit)
	}
	return strconv.FormatInt(int64(h), 10), nil
}

func (l LegacyHasher) Compare(stored, plain string) bool {
	derived, _ := l.Hash(plain)
	return stored == derived
}

// BcryptHasher is the recommended scheme for deployments that do not need
// legacy-data compatibility.
type BcryptHasher struct {
	Cost int
}

func (b BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (b BcryptHasher) Compare(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// HasherForScheme maps a configured scheme name to an implementation,
// defaulting to legacy for unknown values.
func HasherForScheme(scheme string, bcryptCost int) Hasher {
	if scheme == "bcrypt" {
		return BcryptHasher{Cost: bcryptCost}
	}
	return LegacyHasher{}
}
