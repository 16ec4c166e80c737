package mtl

import "strconv"

// cursor scans whitespace-delimited values left to right over an immutable
// line. It is the single primitive every field decoder builds on. All scan
// methods share one contract: on success the cursor advances past the
// consumed text; on failure the cursor is left exactly where it was.
type cursor struct {
	s   string // Line being scanned
	pos int    // Offset of the first unconsumed byte
}

// word returns the next whitespace-delimited token. It reports false with
// an empty token and an unchanged cursor at end of input.
func (c *cursor) word() (string, bool) {
	i := c.pos
	for i < len(c.s) && isSpace(c.s[i]) {
		i++
	}

	j := i
	for j < len(c.s) && !isSpace(c.s[j]) {
		j++
	}

	if i == j {
		return "", false
	}

	c.pos = j
	return c.s[i:j], true
}

// float scans a signed decimal or exponential number using longest valid
// prefix semantics, like strtod: "0.5x" yields 0.5 with the cursor left on
// 'x'. It fails without consuming when no digits are scanned.
func (c *cursor) float() (float64, bool) {
	i := c.pos
	for i < len(c.s) && isSpace(c.s[i]) {
		i++
	}

	end, ok := scanFloat(c.s, i)
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(c.s[i:end], 64)
	if err != nil {
		return 0, false
	}

	c.pos = end
	return f, true
}

// int scans a signed base-10 integer using longest valid prefix semantics,
// like strtoll. It fails without consuming when no digits are scanned.
func (c *cursor) int() (int, bool) {
	i := c.pos
	for i < len(c.s) && isSpace(c.s[i]) {
		i++
	}

	j := i
	if j < len(c.s) && (c.s[j] == '+' || c.s[j] == '-') {
		j++
	}

	start := j
	for j < len(c.s) && isDigit(c.s[j]) {
		j++
	}

	if j == start {
		return 0, false
	}

	n, err := strconv.Atoi(c.s[i:j])
	if err != nil {
		return 0, false
	}

	c.pos = j
	return n, true
}

// rest returns everything from the cursor to the end of the line.
func (c *cursor) rest() string {
	return c.s[c.pos:]
}

// scanFloat finds the end of the longest numeric prefix starting at i.
// The prefix is sign, digits with an optional fraction, and an exponent
// that is consumed only when at least one digit follows it.
func scanFloat(s string, i int) (int, bool) {
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}

	digits := 0
	for j < len(s) && isDigit(s[j]) {
		j++
		digits++
	}

	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
	}

	if digits == 0 {
		return i, false
	}

	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if k < len(s) && isDigit(s[k]) {
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			j = k
		}
	}

	return j, true
}

// isSpace reports whether b is ASCII whitespace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
