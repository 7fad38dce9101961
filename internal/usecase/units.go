package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultUnit is assigned when no unit keyword can be found in a size string.
const DefaultUnit = "each"

// unitKeywords maps size-text substrings to canonical units, in priority
// order. Longer keywords come before their substrings ("gal" before "g",
// "ml" before "l") so the first containment match is the right one.
var unitKeywords = []struct {
	keyword string
	unit    string
}{
	{"fl oz", "fl oz"},
	{"count", "count"},
	{"pack", "pack"},
	{"cup", "cup"},
	{"gal", "gal"},
	{"oz", "oz"},
	{"lb", "lb"},
	{"kg", "kg"},
	{"ml", "ml"},
	{"qt", "qt"},
	{"pt", "pt"},
	{"ct", "count"},
	{"g", "g"},
	{"l", "l"},
}

// Package-level compiled regex patterns for performance
var (
	quantityRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// unitPatterns require the unit token to follow a numeric quantity,
	// e.g. "500ml", "2.5 oz". Evaluated in order; first match wins.
	unitPatterns = []struct {
		re   *regexp.Regexp
		unit string
	}{
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*fl\s*oz\b`), "fl oz"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:count|ct)\b`), "count"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:pack|pk)\b`), "pack"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*cups?\b`), "cup"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:gallons?|gal)\b`), "gal"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:ounces?|oz)\b`), "oz"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:pounds?|lbs?)\b`), "lb"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*kg\b`), "kg"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*ml\b`), "ml"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:quarts?|qt)\b`), "qt"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:pints?|pt)\b`), "pt"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:grams?|g)\b`), "g"},
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:liters?|l)\b`), "l"},
	}
)

// fractionTable maps the fraction strings the extraction contract emits to
// their decimal forms.
var fractionTable = map[string]string{
	"1/2": "0.5",
	"1/4": "0.25",
	"3/4": "0.75",
	"1/3": "0.33",
	"2/3": "0.67",
}

// ParseUnitFromSize scans a free-text size description for a known unit
// keyword and returns the canonical unit, defaulting to "each". Idempotent:
// feeding a canonical unit back in yields the same unit.
func ParseUnitFromSize(text string) string {
	lowered := strings.ToLower(text)
	for _, entry := range unitKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.unit
		}
	}
	return DefaultUnit
}

// ParseQuantityFromSize returns the first numeric substring (integer or
// decimal) found anywhere in the text, defaulting to 1.
func ParseQuantityFromSize(text string) float64 {
	match := quantityRegex.FindString(text)
	if match == "" {
		return 1
	}
	qty, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 1
	}
	return qty
}

// ExtractUnitFromSize is the stricter, regex-anchored variant of unit
// detection: the unit token must follow a numeric quantity. Returns
// ("", false) when no pattern matches.
func ExtractUnitFromSize(text string) (string, bool) {
	for _, p := range unitPatterns {
		if p.re.MatchString(text) {
			return p.unit, true
		}
	}
	return "", false
}

// FractionToDecimal converts a recipe-style fraction string ("1/2") to its
// decimal form ("0.5"). Returns the input unchanged with ok=false when the
// fraction is not in the contract table.
func FractionToDecimal(s string) (string, bool) {
	if decimal, ok := fractionTable[strings.TrimSpace(s)]; ok {
		return decimal, true
	}
	return s, false
}
