package domain

// Mailer sends transactional email. Implementations must not block the
// caller on provider retries; a send failure is reported as an error and
// the caller decides whether it matters.
type Mailer interface {
	Send(to, subject, html, text string) error
}
