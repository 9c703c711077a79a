package lexer

import "strconv"

// parseFloat parses the accumulated digit buffer ("123.45") into a
// float64. Isolated from scanNumber so the accumulation loop stays
// free of strconv's error plumbing.
func parseFloat(digits []byte) (float64, error) {
	return strconv.ParseFloat(string(digits), 64)
}
