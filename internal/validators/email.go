// Package validators holds the input checks shared by the account and
// client handlers.
package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of an email
// address resolves. Practitioner accounts and client records both
// store emails; a domain with neither MX nor A/AAAA records is almost
// certainly a typo.
func IsEmailDomainValid(email string) bool {
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
