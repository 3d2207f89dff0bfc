package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// FormatReceipt renders the receipt number issued for a donation, e.g.
// DNC-DP26-000249. seq is the value taken from the club/event sequence.
func FormatReceipt(eventCode string, seq int64) string {
	return fmt.Sprintf("DNC-%s-%06d", strings.ToUpper(eventCode), seq)
}

// EventCode derives a short receipt code for events created without one:
// the initials of the name plus the two-digit start year ("Durga Puja" in
// 2026 becomes DP26).
func EventCode(name string, start time.Time) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
		if b.Len() >= 4 {
			break
		}
	}
	if b.Len() == 0 {
		b.WriteString("EV")
	}
	return fmt.Sprintf("%s%02d", b.String(), start.Year()%100)
}
