package usecase

import (
	"fmt"
	"strings"

	"github.com/shelfmatch/backend/internal/domain"
)

// ValidateBarcode checks a scanned barcode string against the UPC-A, EAN-13,
// and EAN-8 checksum algorithms and classifies its format. Six-digit codes
// are accepted as UPC-E on format alone (expansion to UPC-A is a scanner
// concern, not handled here). Pure function; invalid input is a normal
// result, never an error.
func ValidateBarcode(raw string) domain.BarcodeValidation {
	code := stripBarcode(raw)

	for _, r := range code {
		if r < '0' || r > '9' {
			return domain.BarcodeValidation{
				Valid:  false,
				Format: domain.FormatInvalid,
				Reason: "must contain only digits",
			}
		}
	}

	switch len(code) {
	case 12:
		return checkDigitResult(code, domain.FormatUPCA, upcWeights)
	case 13:
		return checkDigitResult(code, domain.FormatEAN13, eanReversedWeights)
	case 8:
		return checkDigitResult(code, domain.FormatEAN8, upcWeights)
	case 6:
		// UPC-E carries no check digit of its own in this form
		return domain.BarcodeValidation{Valid: true, Format: domain.FormatUPCE}
	default:
		return domain.BarcodeValidation{
			Valid:  false,
			Format: domain.FormatInvalid,
			Reason: fmt.Sprintf("unsupported barcode length: %d digits", len(code)),
		}
	}
}

// stripBarcode removes whitespace and hyphens from a scanned value.
func stripBarcode(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '-' {
			return -1
		}
		return r
	}, raw)
}

// upcWeights returns the UPC-A/EAN-8 weight for a digit index: 3 for even
// positions, 1 for odd.
func upcWeights(i int) int {
	if i%2 == 0 {
		return 3
	}
	return 1
}

// eanReversedWeights returns the EAN-13 weight for a digit index: 1 for even
// positions, 3 for odd.
func eanReversedWeights(i int) int {
	if i%2 == 0 {
		return 1
	}
	return 3
}

// checkDigitResult validates the trailing check digit of a numeric code
// using the supplied weighting scheme.
func checkDigitResult(code string, format domain.BarcodeFormat, weight func(int) int) domain.BarcodeValidation {
	sum := 0
	for i := 0; i < len(code)-1; i++ {
		sum += int(code[i]-'0') * weight(i)
	}

	expected := (10 - sum%10) % 10
	checkDigit := int(code[len(code)-1] - '0')

	if expected != checkDigit {
		return domain.BarcodeValidation{
			Valid:  false,
			Format: format,
			Reason: fmt.Sprintf("check digit mismatch: expected %d, got %d", expected, checkDigit),
		}
	}

	return domain.BarcodeValidation{Valid: true, Format: format}
}
