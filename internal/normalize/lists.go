package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitList parses a comma-delimited form field into a list: split on
// comma, trim each piece, drop empties, preserve order.
func SplitList(value string) []string {
	result := []string{}
	for _, piece := range strings.Split(value, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			result = append(result, piece)
		}
	}
	return result
}

// SplitPortList parses a comma-delimited form field into integers.
// Pieces that do not parse are dropped silently.
func SplitPortList(value string) []int {
	result := []int{}
	for _, piece := range SplitList(value) {
		n, err := strconv.Atoi(piece)
		if err != nil {
			continue
		}
		result = append(result, n)
	}
	return result
}

// JoinList renders an array field back into the comma-separated form the
// settings inputs expect. Non-array values yield "".
func JoinList(m Map, key string) string {
	list, ok := m[key].([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(list))
	for _, v := range list {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return strings.Join(parts, ", ")
}
