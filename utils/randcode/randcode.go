package randcode

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Numeric6 draws a uniform random 6-digit OTP code.
func Numeric6() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Hex32 returns 32 cryptographically random bytes, hex-encoded (64 chars).
func Hex32() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
