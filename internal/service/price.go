package service

import (
	"regexp"
	"strconv"
	"strings"
)

var priceRe = regexp.MustCompile(`\d+(\.\d+)?`)

// ExtractPrice pulls the first number out of a loosely formatted price
// string ("45 MAD", "MAD45", "45.50"). Inputs with no digits degrade to 0
// rather than erroring; malformed prices are a zero price by policy.
func ExtractPrice(raw string) float64 {
	match := priceRe.FindString(raw)
	if match == "" {
		return 0
	}
	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return price
}

// FormatPrice renders a price the way the menu shows it, with at least one
// decimal and the currency unit: 80 -> "80.0 MAD", 45.5 -> "45.5 MAD".
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + " MAD"
}
