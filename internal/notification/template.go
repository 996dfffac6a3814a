package notification

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

type mailTemplate struct {
	subject *template.Template
	body    *template.Template
}

func mustTemplate(name, subject, body string) mailTemplate {
	return mailTemplate{
		subject: template.Must(template.New(name + "_subject").Option("missingkey=zero").Parse(subject)),
		body:    template.Must(template.New(name + "_body").Option("missingkey=zero").Parse(body)),
	}
}

var templates = map[string]mailTemplate{
	TemplateInvitation: mustTemplate(TemplateInvitation,
		"You are invited to complete your onboarding",
		`Hi {{.name}},

You have been invited to join the team. Open the link below and verify your mobile number to start onboarding:

{{.invitation_url}}

This invitation expires at {{.expires_at}}.
`),
	TemplateOTP: mustTemplate(TemplateOTP,
		"Your onboarding verification code",
		`Hi {{.name}},

Your verification code is {{.code}}. It is valid for {{.expires_in_minutes}} minutes.
If you did not request this code you can ignore this email.
`),
	TemplateOnboardingSubmitted: mustTemplate(TemplateOnboardingSubmitted,
		"Onboarding submitted: {{.name}}",
		`{{.name}} ({{.mobile_number}}) has submitted onboarding details and is waiting for review.
`),
	TemplateOnboardingApproved: mustTemplate(TemplateOnboardingApproved,
		"Welcome aboard, {{.name}}",
		`Hi {{.name}},

Your onboarding has been approved.

Employee ID: {{.employee_id}}
Official email: {{.official_email}}
{{- if .temporary_password}}
Temporary password: {{.temporary_password}}

Please change this password after your first login.
{{- end}}
`),
	TemplateOnboardingRejected: mustTemplate(TemplateOnboardingRejected,
		"Onboarding needs changes",
		`Hi {{.name}},

Your onboarding submission was sent back for changes.
{{- if .remarks}}

Remarks: {{.remarks}}
{{- end}}

Please update your details and submit again.
`),
	TemplateLeaveStatus: mustTemplate(TemplateLeaveStatus,
		"Leave request {{.status}}",
		`Hi {{.name}},

Your {{.leave_type}} leave from {{.start_date}} to {{.end_date}} is now {{.status}}.
{{- if .reason}}

Reason: {{.reason}}
{{- end}}
`),
	TemplatePasswordChanged: mustTemplate(TemplatePasswordChanged,
		"Your password was changed",
		`Hi {{.name}},

The password of your account was changed at {{.changed_at}}. If this was not you, contact HR immediately.
`),
}

// Render menghasilkan subject dan body untuk sebuah Message.
func Render(msg Message) (string, string, error) {
	tpl, ok := templates[msg.Template]
	if !ok {
		return "", "", errors.Wrapf(ErrUnknownTemplate, "template %q", msg.Template)
	}

	data := msg.Data
	if data == nil {
		data = map[string]string{}
	}

	var subject, body strings.Builder
	if err := tpl.subject.Execute(&subject, data); err != nil {
		return "", "", errors.Wrapf(err, "render %s subject", msg.Template)
	}
	if err := tpl.body.Execute(&body, data); err != nil {
		return "", "", errors.Wrapf(err, "render %s body", msg.Template)
	}
	return subject.String(), body.String(), nil
}
