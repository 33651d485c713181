package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTokens parses token counts like "1024", "16k", "16K", "1m".
// k and m are binary multipliers, matching how max-tokens limits are usually written.
func ParseTokens(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty token count")
	}

	multiplier := int64(1)
	numericPart := s
	switch s[len(s)-1] {
	case 'k':
		multiplier = 1024
		numericPart = s[:len(s)-1]
	case 'm':
		multiplier = 1024 * 1024
		numericPart = s[:len(s)-1]
	}

	n, err := strconv.ParseInt(numericPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token count %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("token count must be positive, got %d", n)
	}
	if n > math.MaxInt32/multiplier {
		return 0, fmt.Errorf("token count %q too large", s)
	}
	return int(n * multiplier), nil
}
