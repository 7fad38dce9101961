package usecase

import (
	"testing"

	"github.com/shelfmatch/backend/internal/domain"
)

func TestValidateBarcode(t *testing.T) {
	t.Run("valid UPC-A", func(t *testing.T) {
		result := ValidateBarcode("036000291452")
		if !result.Valid {
			t.Fatalf("Valid = false, want true (reason: %s)", result.Reason)
		}
		if result.Format != domain.FormatUPCA {
			t.Errorf("Format = %s, want UPC-A", result.Format)
		}
	})

	t.Run("valid EAN-13", func(t *testing.T) {
		result := ValidateBarcode("4006381333931")
		if !result.Valid {
			t.Fatalf("Valid = false, want true (reason: %s)", result.Reason)
		}
		if result.Format != domain.FormatEAN13 {
			t.Errorf("Format = %s, want EAN-13", result.Format)
		}
	})

	t.Run("valid EAN-8", func(t *testing.T) {
		result := ValidateBarcode("73513537")
		if !result.Valid {
			t.Fatalf("Valid = false, want true (reason: %s)", result.Reason)
		}
		if result.Format != domain.FormatEAN8 {
			t.Errorf("Format = %s, want EAN-8", result.Format)
		}
	})

	t.Run("six digits accepted as UPC-E without checksum", func(t *testing.T) {
		result := ValidateBarcode("123456")
		if !result.Valid {
			t.Fatalf("Valid = false, want true (reason: %s)", result.Reason)
		}
		if result.Format != domain.FormatUPCE {
			t.Errorf("Format = %s, want UPC-E", result.Format)
		}
	})

	t.Run("strips spaces and hyphens before validating", func(t *testing.T) {
		result := ValidateBarcode("0 36000-29145-2")
		if !result.Valid {
			t.Fatalf("Valid = false, want true (reason: %s)", result.Reason)
		}
		if result.Format != domain.FormatUPCA {
			t.Errorf("Format = %s, want UPC-A", result.Format)
		}
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		result := ValidateBarcode("03600029145X")
		if result.Valid {
			t.Error("Valid = true, want false")
		}
		if result.Reason != "must contain only digits" {
			t.Errorf("Reason = %q, want digits-only reason", result.Reason)
		}
	})

	t.Run("rejects unsupported lengths", func(t *testing.T) {
		for _, code := range []string{"", "1234", "12345678901", "12345678901234"} {
			result := ValidateBarcode(code)
			if result.Valid {
				t.Errorf("ValidateBarcode(%q).Valid = true, want false", code)
			}
			if result.Format != domain.FormatInvalid {
				t.Errorf("ValidateBarcode(%q).Format = %s, want invalid", code, result.Format)
			}
		}
	})

	t.Run("single digit flip fails the checksum", func(t *testing.T) {
		// Flip the leading digit of a valid UPC-A
		result := ValidateBarcode("136000291452")
		if result.Valid {
			t.Error("Valid = true, want false after digit flip")
		}
		if result.Format != domain.FormatUPCA {
			t.Errorf("Format = %s, want UPC-A (detected by length)", result.Format)
		}
		if result.Reason == "" {
			t.Error("Reason is empty, want check digit mismatch detail")
		}
	})

	t.Run("wrong EAN-13 check digit fails", func(t *testing.T) {
		result := ValidateBarcode("4006381333932")
		if result.Valid {
			t.Error("Valid = true, want false")
		}
	})
}
