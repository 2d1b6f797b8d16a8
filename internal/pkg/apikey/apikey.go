package apikey

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

var ErrGenerationFailed = errors.New("api key generation failed")

// 16 random bytes, hex-encoded (32 characters)
const keyBytes = 16

func Generate() (string, error) {
	buf := make([]byte, keyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrGenerationFailed
	}
	return hex.EncodeToString(buf), nil
}
