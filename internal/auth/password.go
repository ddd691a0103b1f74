package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt rejects inputs longer than 72 bytes; longer passwords are reduced
// to a fixed-size digest before hashing and verification.
const bcryptMaxInput = 72

func prepare(p string) []byte {
	if len(p) <= bcryptMaxInput {
		return []byte(p)
	}
	sum := sha256.Sum256([]byte(p))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prepare(p), bcrypt.DefaultCost)
	return string(b), err
}

// VerifyPassword returns nil when plain matches hash.
func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), prepare(plain))
}

func CheckPassword(plain, hash string) bool {
	return VerifyPassword(plain, hash) == nil
}
