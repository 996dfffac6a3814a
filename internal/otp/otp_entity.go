package otp

import "time"

// Challenge adalah satu OTP aktif per nomor HP. Disimpan terpisah dari
// record User sehingga churn OTP tidak menyentuh tabel users.
type Challenge struct {
	MobileNumber string    `json:"mobile_number"`
	Secret       string    `json:"secret"`
	Counter      uint64    `json:"counter"`
	Attempts     int       `json:"attempts"`
	IssuedAt     time.Time `json:"issued_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (c *Challenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

type IssueResult struct {
	MobileNumber     string    `json:"mobile_number"`
	ExpiresAt        time.Time `json:"expires_at"`
	ExpiresInSeconds int       `json:"expires_in_seconds"`
}
