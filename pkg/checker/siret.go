package checker

import (
	"regexp"
	"strings"
)

// 14 digits, optionally grouped 3/3/3/5 by single spaces.
var siretPattern = regexp.MustCompile(`\A\d{3} ?\d{3} ?\d{3} ?\d{5}\z`)

// Offsets at which the sanitizer re-inserts group separators.
var siretSeparators = []int{3, 7, 11}

// SIRET builds a checker for French SIRET establishment identifiers. The
// shape check runs first; values that pass it are then verified with a
// mod-10 checksum over the digits. In sanitize mode the value is rewritten
// in the canonical spaced form ("532 685 104 00012").
func SIRET(opts Options) (Checker, error) {
	base, err := buildString(opts, siretPattern)
	if err != nil {
		return nil, err
	}
	return wrap(base, siretCheck), nil
}

func siretCheck(value any, ctx *Context) any {
	str, ok := value.(string)
	if !ok {
		return false
	}
	digits := strings.ReplaceAll(str, " ", "")
	if !luhnValid(digits) {
		return false
	}
	if ctx.Sanitize {
		return formatSIRET(digits)
	}
	return nil
}

// luhnValid runs the Luhn mod-10 checksum: every second digit from the
// right is doubled, doubles over 9 collapse by subtracting 9, and the sum
// must be a multiple of 10.
func luhnValid(digits string) bool {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

func formatSIRET(digits string) string {
	out := digits
	for _, off := range siretSeparators {
		out = out[:off] + " " + out[off:]
	}
	return out
}
