package identity

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var nonDigitRegex = regexp.MustCompile(`\D+`)

// Attribute categories used when bucketing users by shared contact data.
const (
	attributeEmail   = "EMAIL"
	attributePhone   = "PHONE"
	attributeAddress = "ADDRESS"
)

// addressFragmentLen bounds how much of an address is compared. The leading
// fragment is enough to catch the same street entered with differing suffixes.
const addressFragmentLen = 15

// minFragmentLen guards against merging identities on short or empty
// fragments; anything this size or below never matches.
const minFragmentLen = 4

// normalizeEmail lowercases and trims the provided email.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// normalizePhone keeps only digits so formatting differences cannot split a
// shared number.
func normalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// normalizeAddress lowercases, trims, and truncates to the leading fragment.
func normalizeAddress(addr string) string {
	addr = strings.TrimSpace(strings.ToLower(addr))
	runes := []rune(addr)
	if len(runes) > addressFragmentLen {
		return string(runes[:addressFragmentLen])
	}
	return addr
}

// matchable reports whether a normalized fragment is long enough to be used
// as matching evidence. Length is counted in characters, not bytes, so
// multibyte text does not slip past the guard.
func matchable(fragment string) bool {
	return utf8.RuneCountInString(fragment) > minFragmentLen
}
