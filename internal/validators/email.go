package validators

import (
	"net"
	"strings"
)

// IsEmailShaped is a pure structural check: one "@" with a non-empty
// local part and a dotted domain. No network lookups, safe on the
// public booking path.
func IsEmailShaped(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(email, " \t") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// IsEmailDomainValid additionally resolves the domain. Used on the
// admin side where a DNS round trip is acceptable.
func IsEmailDomainValid(email string) bool {
	if !IsEmailShaped(email) {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
