package scanner

import "strconv"

// parseNumber converts a scanned numeric lexeme to its value. All Lox numbers
// are double-precision floats. The lexeme is guaranteed by the scanner to
// match DIGIT+ ( '.' DIGIT+ )? so the conversion cannot fail on syntax. A
// literal too large for a float64 converts to +Inf; the range error is
// ignored, which is the standard double behavior.
func parseNumber(lexeme string) float64 {
	v, _ := strconv.ParseFloat(lexeme, 64)
	return v
}
