package hssctl

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValidateIMSI checks that an IMSI is exactly 15 decimal digits.
func ValidateIMSI(imsi string) error {
	if len(imsi) != 15 {
		return errors.New("IMSI must be 15 digits long")
	}
	for _, r := range imsi {
		if r < '0' || r > '9' {
			return fmt.Errorf("IMSI contains invalid character %q", r)
		}
	}
	return nil
}

// ValidateKey checks that a Ki or OPc value is an even-length hex string
// of 128 or 256 bits.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("required")
	}
	if len(key)%2 != 0 {
		return errors.New("hex strings must have an even number of digits")
	}
	for _, r := range key {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("invalid hex character %q", r)
		}
	}
	if len(key) != 32 && len(key) != 64 {
		return fmt.Errorf("must be 128 or 256 bits, got %d bits", len(key)/2*8)
	}
	return nil
}

var bandwidthRE = regexp.MustCompile(`^ *([0-9]+) ?([kmg]?bit)? *$`)

// ParseBandwidth converts a bandwidth string such as "150mbit", "1 gbit" or
// a bare bit count like "2500" into bits per second.
func ParseBandwidth(bandwidth string) (int64, error) {
	exponents := map[string]int64{
		"":     1,
		"bit":  1,
		"kbit": 1_000,
		"mbit": 1_000_000,
		"gbit": 1_000_000_000,
	}

	match := bandwidthRE.FindStringSubmatch(strings.ToLower(bandwidth))
	if match == nil {
		return 0, fmt.Errorf("invalid bandwidth %q, expected e.g. \"100mbit\"", bandwidth)
	}

	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bandwidth %q: %w", bandwidth, err)
	}

	return value * exponents[match[2]], nil
}
