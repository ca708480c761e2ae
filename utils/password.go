package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomInt(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return int(n.Int64())
}

// GenerateRandomPassword generates a 12-character temporary password for
// accounts provisioned by the payment workflow. Drawn from crypto/rand
// since these credentials are emailed out as real login secrets.
func GenerateRandomPassword() string {
	b := make([]byte, 12)
	for i := range b {
		b[i] = passwordCharset[randomInt(len(passwordCharset))]
	}
	return string(b)
}

// GenerateUsername derives a username from the email local part plus a
// random 4-digit suffix, e.g. "jane@x.io" -> "jane_4821".
func GenerateUsername(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	return fmt.Sprintf("%s_%04d", local, randomInt(10000))
}
