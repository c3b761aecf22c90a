package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the signup welcome email.
type WelcomeEmailData struct {
	Email string
	Name  string
}

// RegistrationEmailData holds data for the participation confirmation email.
type RegistrationEmailData struct {
	Email          string
	Name           string
	HackathonTitle string
	StartDate      string
	Location       string
}

// EmailService defines the contract for sending domain-level emails.
// Callers treat sends as best effort: failures are logged, never propagated
// into the request outcome.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
}
