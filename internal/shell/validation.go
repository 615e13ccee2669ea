package shell

import (
	"errors"
	"strconv"
	"strings"
)

// Input validators. Each is loop-free and returns the parsed value or an
// error; the shell owns the retry loops.

// ParseChoice parses a menu choice in [1,8].
func ParseChoice(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 8 {
		return 0, errors.New("choice must be a number between 1 and 8")
	}
	return n, nil
}

// ParseID parses a strictly positive product ID.
func ParseID(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, errors.New("ID must be a positive number")
	}
	return n, nil
}

// ParseQuantity parses a non-negative quantity.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errors.New("quantity must be a non-negative number")
	}
	return n, nil
}

// ParsePrice parses a non-negative price.
func ParsePrice(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(f >= 0) {
		return 0, errors.New("price must be a non-negative number")
	}
	return f, nil
}

// ParseName requires a non-empty product name.
func ParseName(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", errors.New("name must not be empty")
	}
	return s, nil
}
