package domain

// TokenVerifier checks a bearer token and returns the subject it was
// issued to. Tokens are minted out-of-band for operators; this system
// exposes no signup or login surface.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
