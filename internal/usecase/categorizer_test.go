package usecase

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		brand       string
		description string
		want        string
	}{
		{"chicken product", "Chicken Breast", "Tyson", "", "meat_poultry"},
		{"dairy product", "Whole Milk", "", "vitamin d added", "dairy"},
		{"seafood product", "Atlantic Salmon Fillet", "", "", "seafood"},
		{"beverage", "Cola", "", "12 fl oz cans", "beverages"},
		{"cleaning supply", "All-Purpose Cleaner", "", "kitchen degreaser spray", "cleaning"},
		{"keyword in description only", "House Special", "", "stewed tomato and onion", "produce"},
		{"no keyword hits", "Mystery Box", "Acme", "", "general"},
		{"empty input", "", "", "", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.productName, tt.brand, tt.description)
			if got != tt.want {
				t.Errorf("Categorize(%q, %q, %q) = %q, want %q", tt.productName, tt.brand, tt.description, got, tt.want)
			}
		})
	}

	t.Run("ties resolve to the earlier category", func(t *testing.T) {
		// one hit each for meat_poultry ("chicken") and beverages ("juice")
		got := Categorize("chicken juice", "", "")
		if got != "meat_poultry" {
			t.Errorf("Categorize = %q, want meat_poultry on tie", got)
		}
	})

	t.Run("highest keyword count wins", func(t *testing.T) {
		// beverages scores twice (coffee, tea), dairy once (milk)
		got := Categorize("coffee and tea with milk", "", "")
		if got != "beverages" {
			t.Errorf("Categorize = %q, want beverages", got)
		}
	})
}
