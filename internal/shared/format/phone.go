package format

import "strings"

// PhoneNumber renders a digit string as (123) 456-7890, degrading
// gracefully for partial input. Empty or nil-ish input renders empty.
func PhoneNumber(value string) string {
	digits := PhoneDigits(value)

	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		end := len(digits)
		if end > 10 {
			end = 10
		}
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:end]
	}
}

// PhoneDigits strips everything but digits; this is the storage form.
func PhoneDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
