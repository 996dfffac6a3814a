package password

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const (
	lowerChars   = "abcdefghijkmnpqrstuvwxyz"
	upperChars   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digitChars   = "23456789"
	specialChars = "!@#$%&*?"

	TemporaryLength = 12
)

var (
	ErrTooShort       = errors.New("password must be at least 8 characters")
	ErrMissingLower   = errors.New("password must contain a lowercase letter")
	ErrMissingUpper   = errors.New("password must contain an uppercase letter")
	ErrMissingDigit   = errors.New("password must contain a digit")
	ErrMissingSpecial = errors.New("password must contain a special character")

	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Hash membuat bcrypt hash. cost <= 0 memakai bcrypt.DefaultCost.
func Hash(pw string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(b), err
}

func Compare(hash, pw string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// ValidateStrength enforces min 8 chars with lower, upper, digit and special characters.
func ValidateStrength(pw string) error {
	if len(pw) < 8 {
		return ErrTooShort
	}
	if !lowerRe.MatchString(pw) {
		return ErrMissingLower
	}
	if !upperRe.MatchString(pw) {
		return ErrMissingUpper
	}
	if !digitRe.MatchString(pw) {
		return ErrMissingDigit
	}
	if !specialRe.MatchString(pw) {
		return ErrMissingSpecial
	}
	return nil
}

// GenerateTemporary returns a random password that always passes ValidateStrength.
func GenerateTemporary(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	classes := []string{lowerChars, upperChars, digitChars, specialChars}
	all := lowerChars + upperChars + digitChars + specialChars

	out := make([]byte, 0, length)
	for _, set := range classes {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates supaya posisi kelas karakter tidak bisa ditebak
	for i := len(out) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		j := int(n.Int64())
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}
