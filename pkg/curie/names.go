package curie

import "unicode"

// IsNameStartChar reports whether r may begin a prefix name.
func IsNameStartChar(r rune) bool {
	return unicode.IsLetter(r)
}

// IsNameChar reports whether r may appear inside a prefix or local name.
func IsNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' || r == '·'
}

// IsLocalChar reports whether r may appear inside a local name. Colons are
// allowed after the first one separating the prefix.
func IsLocalChar(r rune) bool {
	return IsNameChar(r) || r == ':'
}

// IsLocalStartChar reports whether r may begin a local name.
func IsLocalStartChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ':'
}

// IsPrefixName reports whether name is usable as a declared prefix. The
// empty string names the default prefix and is accepted.
func IsPrefixName(name string) bool {
	if name == "" {
		return true
	}
	runes := []rune(name)
	if !IsNameStartChar(runes[0]) || runes[len(runes)-1] == '.' {
		return false
	}
	for _, r := range runes[1:] {
		if !IsNameChar(r) {
			return false
		}
	}
	return true
}

// IsLocalName reports whether local can follow a prefix in an abbreviated IRI.
func IsLocalName(local string) bool {
	if local == "" {
		return false
	}
	runes := []rune(local)
	if !IsLocalStartChar(runes[0]) || runes[len(runes)-1] == '.' {
		return false
	}
	for _, r := range runes[1:] {
		if !IsLocalChar(r) {
			return false
		}
	}
	return true
}
