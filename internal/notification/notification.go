package notification

import (
	"context"
	"errors"
)

const (
	TemplateInvitation          = "invitation"
	TemplateOTP                 = "otp"
	TemplateOnboardingSubmitted = "onboarding_submitted"
	TemplateOnboardingApproved  = "onboarding_approved"
	TemplateOnboardingRejected  = "onboarding_rejected"
	TemplateLeaveStatus         = "leave_status"
	TemplatePasswordChanged     = "password_changed"
)

var (
	ErrRecipientRequired = errors.New("notification recipient is required")
	ErrUnknownTemplate   = errors.New("unknown notification template")
	// ErrCredentialNotQueueable: kredensial tidak boleh tersimpan di outbox atau log Kafka.
	ErrCredentialNotQueueable = errors.New("notification carries credentials and must be sent directly")
)

// credentialKeys adalah key Data yang hanya boleh lewat DirectNotifier.
var credentialKeys = []string{"temporary_password"}

// CarriesCredentials true bila Data memuat kredensial yang tidak kosong.
func (m Message) CarriesCredentials() bool {
	for _, k := range credentialKeys {
		if m.Data[k] != "" {
			return true
		}
	}
	return false
}

// Message adalah permintaan kirim notifikasi berbasis template ke satu alamat.
type Message struct {
	To       string            `json:"to"`
	Template string            `json:"template"`
	Data     map[string]string `json:"data"`
}

//go:generate mockgen -source=notification.go -destination=mock/notification_mock.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

func (m Message) Validate() error {
	if m.To == "" {
		return ErrRecipientRequired
	}
	if _, ok := templates[m.Template]; !ok {
		return ErrUnknownTemplate
	}
	return nil
}
