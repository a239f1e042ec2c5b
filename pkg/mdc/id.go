package mdc

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// NewID returns a random id of the given number of digits that starts with
// a lowercase letter followed by lowercase letters and digits. It returns
// the empty string for digits < 1.
func NewID(digits int) string {
	if digits < 1 {
		return ""
	}
	var b strings.Builder
	b.Grow(digits)
	b.WriteByte(byte('a' + rand.IntN(26)))
	for i := 1; i < digits; i++ {
		b.WriteString(strconv.FormatInt(int64(rand.IntN(36)), 36))
	}
	return b.String()
}

// TooltipID returns a generated tooltip id such as "mrj-0k3x9a1z".
func TooltipID() string {
	n := rand.Int64N(36 * 36 * 36 * 36 * 36 * 36 * 36 * 36)
	s := strconv.FormatInt(n, 36)
	return "mrj-" + strings.Repeat("0", 8-len(s)) + s
}
