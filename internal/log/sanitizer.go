package log

import "strings"

// MaskSecret keeps the first and last four characters of a secret.
// Values shorter than eight characters are fully masked.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	n := len(secret)
	if n < 8 {
		return "***"
	}

	return secret[:4] + strings.Repeat("*", n-8) + secret[n-4:]
}
