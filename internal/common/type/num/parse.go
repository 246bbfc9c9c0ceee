// Released under an MIT license. See LICENSE.

package num

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/corelisp/corelisp/internal/common/condition"
)

// Parse converts the token s to a num.
//
// Accepted forms are integers ("42", "-7", "12."), ratios ("3/4",
// "-6/8", reduced on creation) and floats ("1.5", ".5", "1e10", "2d0").
// If s does not look like a number, ok is false. A ratio with a zero
// denominator looks like a number but is an error.
func Parse(s string) (n *num, ok bool, err error) {
	body := s
	if strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-") {
		body = body[1:]
	}

	if body == "" {
		return nil, false, nil
	}

	if digits(body) {
		return integer(s), true, nil
	}

	if strings.HasSuffix(body, ".") && digits(body[:len(body)-1]) {
		return integer(s[:len(s)-1]), true, nil
	}

	if i := strings.IndexByte(body, '/'); i > 0 {
		numerator, denominator := body[:i], body[i+1:]
		if !digits(numerator) || !digits(denominator) {
			return nil, false, nil
		}

		d, _ := new(big.Int).SetString(denominator, 10)
		if d.Sign() == 0 {
			return nil, true, condition.DivideByZero()
		}

		return Rat(new(big.Rat).SetFrac(integer(s[:len(s)-len(body)+i]).Numerator(), d)), true, nil
	}

	f, valid := float(body)
	if !valid {
		return nil, false, nil
	}

	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return nil, true, err
	}

	if s[0] == '-' {
		v = -v
	}

	return Float(v), true, nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// float returns s rewritten with a Go exponent marker, if s is an
// unsigned float: mantissa with a decimal point or an exponent.
func float(s string) (string, bool) {
	mantissa, exponent := s, ""

	if i := strings.IndexAny(s, "eEdDfFsSlL"); i >= 0 {
		mantissa, exponent = s[:i], s[i+1:]

		if strings.HasPrefix(exponent, "+") || strings.HasPrefix(exponent, "-") {
			if !digits(exponent[1:]) {
				return "", false
			}
		} else if !digits(exponent) {
			return "", false
		}
	}

	whole, fraction := mantissa, ""
	point := strings.IndexByte(mantissa, '.')

	if point >= 0 {
		whole, fraction = mantissa[:point], mantissa[point+1:]
	}

	switch {
	case whole == "" && fraction == "":
		return "", false
	case whole != "" && !digits(whole):
		return "", false
	case fraction != "" && !digits(fraction):
		return "", false
	case point < 0 && exponent == "":
		return "", false
	}

	if exponent == "" {
		return mantissa, true
	}

	return mantissa + "e" + exponent, true
}

func integer(s string) *num {
	i, _ := new(big.Int).SetString(strings.TrimPrefix(s, "+"), 10)

	return BigInt(i)
}
