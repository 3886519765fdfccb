package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a vertex index to its valve name.
type IDFn func(idx int) string

// PuzzleIDFn names valves with at least two capital letters in base 26:
// 0 → "AA", 1 → "AB", 26 → "BA", 676 → "BAA".
func PuzzleIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("PuzzleIDFn: idx must be ≥ 0, got %d", idx))
	}
	var b []byte
	for n, i := idx, 0; i < 2 || n > 0; i++ {
		b = append(b, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// SymbolNumberIDFn returns an IDFn producing prefix+index, e.g. "V0", "V1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
