package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// GenerateOTP generates a cryptographically secure 6-digit OTP.
func GenerateOTP() (string, error) {
	max := big.NewInt(999999)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	// +1 menghindari 0, leading zeros dipertahankan
	return fmt.Sprintf("%06d", n.Int64()+1), nil
}

// HashOTP menyimpan OTP sebagai bcrypt hash, bukan plaintext.
func HashOTP(code string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckOTP membandingkan kode yang dikirim user dengan hash tersimpan.
func CheckOTP(hashed, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(code)) == nil
}
