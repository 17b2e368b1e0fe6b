package common

import "strings"

// WipeByteArray zeroes b in place. Used for passwords read from the terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// IsPublicPath reports whether path hits one of PublicEndpoints.
func IsPublicPath(path string) bool {
	for _, p := range PublicEndpoints {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// IsAuthFailureMessage reports whether msg is one of AuthFailureMessages.
func IsAuthFailureMessage(msg string) bool {
	msg = strings.TrimSpace(msg)
	for _, m := range AuthFailureMessages {
		if msg == m {
			return true
		}
	}
	return false
}
