package validators

import "testing"

// Malformed addresses must be rejected before any DNS lookup happens.
func TestIsEmailDomainValid_MalformedAddresses(t *testing.T) {
	for _, email := range []string{"", "marie", "marie@"} {
		if IsEmailDomainValid(email) {
			t.Fatalf("expected %q to be rejected", email)
		}
	}
}
