// Add utility functions here
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
)

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// RandomDigits returns n random decimal digits as a string, first digit
// never zero so the width is stable.
func RandomDigits(n int) string {
	if n <= 0 {
		return ""
	}
	max := big.NewInt(10)
	out := make([]byte, n)
	for i := range out {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			out[i] = '1'
			continue
		}
		d := byte(v.Int64())
		if i == 0 && d == 0 {
			d = 1
		}
		out[i] = '0' + d
	}
	return string(out)
}

// ClampPage normalizes pagination query values: page >= 1, limit in [1,100]
// falling back to the given default.
func ClampPage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// HumanSize renders a byte count in MB for error messages.
func HumanSize(bytes int64) string {
	return fmt.Sprintf("%dMB", bytes>>20)
}
