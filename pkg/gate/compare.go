package gate

import "crypto/subtle"

// Compare reports whether presented grants access for configured.
// An empty configured secret never matches.
func Compare(presented, configured string) bool {
	if configured == "" {
		return false
	}
	if len(presented) != len(configured) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) == 1
}
