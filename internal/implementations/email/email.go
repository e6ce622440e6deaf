package email

import (
	"accountd/internal/core/domain/user"
	"fmt"
	"net/url"
)

const passwordResetSubject = "Reset your password"

// passwordResetLink appends the signed proof to the configured base URL,
// e.g. https://example.com/reset-password?proof=<jwt>. The query key must
// stay in sync with what the reset handlers accept.
func passwordResetLink(baseURL url.URL, proof user.PasswordResetProof) string {
	query := baseURL.Query()
	query.Set("proof", string(proof))
	baseURL.RawQuery = query.Encode()
	return baseURL.String()
}

func passwordResetBody(u user.User, link string) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"A password reset was requested for your account. "+
			"Follow the link below to choose a new password:\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.",
		u.Name,
		link,
	)
}
