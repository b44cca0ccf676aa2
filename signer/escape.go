package signer

import (
	"strings"

	"github.com/kbukum/mws/params"
)

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether b falls outside the unreserved set
// A-Z a-z 0-9 - _ . ~
func shouldEscape(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return false
	case b == '-', b == '_', b == '.', b == '~':
		return false
	}
	return true
}

// Escape percent-encodes s byte by byte with uppercase hex digits.
// Space becomes %20, never +.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !shouldEscape(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[b>>4])
		sb.WriteByte(upperhex[b&0x0f])
	}
	return sb.String()
}

// Canonical sorts pairs by key and joins them as escaped key=value
// separated by &.
func Canonical(pairs params.Pairs) string {
	var sb strings.Builder
	for i, p := range pairs.Sorted() {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(Escape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(Escape(p.Value))
	}
	return sb.String()
}
