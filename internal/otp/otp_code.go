package otp

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

var hotpOpts = hotp.ValidateOpts{
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// newSecret membuat secret base32 acak (160 bit) dan counter awal acak.
func newSecret() (string, uint64, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", 0, err
	}
	var c [8]byte
	if _, err := rand.Read(c[:]); err != nil {
		return "", 0, err
	}
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)
	return secret, binary.BigEndian.Uint64(c[:]), nil
}

func generateCode(secret string, counter uint64) (string, error) {
	return hotp.GenerateCodeCustom(secret, counter, hotpOpts)
}

func validateCode(code string, ch *Challenge) bool {
	ok, err := hotp.ValidateCustom(code, ch.Counter, ch.Secret, hotpOpts)
	return err == nil && ok
}
