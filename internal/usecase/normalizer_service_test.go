package usecase

import (
	"testing"

	"github.com/shelfmatch/backend/internal/domain"
)

func TestNormalizeRecipe(t *testing.T) {
	svc := NewNormalizerService(NormalizerConfig{})

	t.Run("missing quantity becomes empty string", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{
			RecipeName: "Pancakes from Scratch",
			Ingredients: []domain.RawIngredient{
				{Name: "eggs", Unit: "each"},
			},
		})

		if len(recipe.Ingredients) != 1 {
			t.Fatalf("len(Ingredients) = %d, want 1", len(recipe.Ingredients))
		}
		if recipe.Ingredients[0].Quantity != "" {
			t.Errorf("Quantity = %q, want empty string", recipe.Ingredients[0].Quantity)
		}
	})

	t.Run("fraction quantities become decimals", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{
			RecipeName: "Pancakes from Scratch",
			Ingredients: []domain.RawIngredient{
				{Quantity: "1/2", Unit: "cup", Name: "sugar"},
				{Quantity: "2/3", Unit: "cup", Name: "flour"},
			},
		})

		if recipe.Ingredients[0].Quantity != "0.5" {
			t.Errorf("Quantity = %q, want 0.5", recipe.Ingredients[0].Quantity)
		}
		if recipe.Ingredients[1].Quantity != "0.67" {
			t.Errorf("Quantity = %q, want 0.67", recipe.Ingredients[1].Quantity)
		}
	})

	t.Run("numeric quantities are formatted", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{
			RecipeName: "Pancakes from Scratch",
			Ingredients: []domain.RawIngredient{
				{Quantity: float64(2), Unit: "cup", Name: "flour"},
				{Quantity: 2.5, Unit: "cup", Name: "milk"},
			},
		})

		if recipe.Ingredients[0].Quantity != "2" {
			t.Errorf("Quantity = %q, want 2", recipe.Ingredients[0].Quantity)
		}
		if recipe.Ingredients[1].Quantity != "2.5" {
			t.Errorf("Quantity = %q, want 2.5", recipe.Ingredients[1].Quantity)
		}
	})

	t.Run("missing unit inferred from quantity text or defaulted", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{
			RecipeName: "Test Dressing",
			Ingredients: []domain.RawIngredient{
				{Quantity: "500ml", Name: "olive oil"},
				{Quantity: "2", Name: "eggs"},
			},
		})

		if recipe.Ingredients[0].Unit != "ml" {
			t.Errorf("Unit = %q, want ml", recipe.Ingredients[0].Unit)
		}
		if recipe.Ingredients[1].Unit != "each" {
			t.Errorf("Unit = %q, want each", recipe.Ingredients[1].Unit)
		}
	})

	t.Run("missing category inferred from name", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{
			RecipeName: "Roast Chicken Dinner",
			Ingredients: []domain.RawIngredient{
				{Quantity: "2", Unit: "lb", Name: "chicken thighs"},
			},
		})

		if recipe.Ingredients[0].Category != "meat_poultry" {
			t.Errorf("Category = %q, want meat_poultry", recipe.Ingredients[0].Category)
		}
	})

	t.Run("missing recipe name falls back", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{})
		if recipe.Name != "Untitled Recipe" {
			t.Errorf("Name = %q, want Untitled Recipe", recipe.Name)
		}
	})

	t.Run("empty ingredient list warns instead of failing", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{RecipeName: "Stew"})

		if recipe.Ingredients == nil {
			t.Fatal("Ingredients is nil, want empty slice")
		}
		if !hasWarning(recipe.Warnings, warnNoIngredients) {
			t.Errorf("Warnings = %v, want %q", recipe.Warnings, warnNoIngredients)
		}
		if !hasWarning(recipe.Warnings, warnLowConfidence) {
			t.Errorf("Warnings = %v, want %q", recipe.Warnings, warnLowConfidence)
		}
	})

	t.Run("garbled confidence defaults to 0.5 clamped", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{
			RecipeName: "Soup of the Day",
			Ingredients: []domain.RawIngredient{
				{Name: "carrots", Confidence: "not-a-number"},
				{Name: "onions", Confidence: 3.5},
				{Name: "celery", Confidence: -1.0},
			},
		})

		if recipe.Ingredients[0].Confidence != 0.5 {
			t.Errorf("Confidence = %v, want 0.5 default", recipe.Ingredients[0].Confidence)
		}
		if recipe.Ingredients[1].Confidence != 1.0 {
			t.Errorf("Confidence = %v, want clamped to 1.0", recipe.Ingredients[1].Confidence)
		}
		if recipe.Ingredients[2].Confidence != 0 {
			t.Errorf("Confidence = %v, want clamped to 0", recipe.Ingredients[2].Confidence)
		}
	})

	t.Run("servings coerced from string", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{
			RecipeName: "Family Lasagna",
			Servings:   "6",
			Ingredients: []domain.RawIngredient{
				{Quantity: "1", Unit: "lb", Name: "pasta"},
			},
		})
		if recipe.Servings != 6 {
			t.Errorf("Servings = %d, want 6", recipe.Servings)
		}
	})

	t.Run("complete recipe clears the review threshold", func(t *testing.T) {
		recipe := svc.NormalizeRecipe(domain.RawRecipe{
			RecipeName:   "Roast Chicken Dinner",
			Servings:     float64(4),
			Instructions: []string{"roast at 400F for 45 minutes"},
			Ingredients: []domain.RawIngredient{
				{Quantity: "2", Unit: "lb", Name: "chicken thighs"},
			},
		})

		if recipe.Confidence < 0.7 {
			t.Errorf("Confidence = %v, want >= 0.7", recipe.Confidence)
		}
		if hasWarning(recipe.Warnings, warnLowConfidence) {
			t.Errorf("Warnings = %v, did not want low-confidence flag", recipe.Warnings)
		}
	})
}

func TestNormalizeMenu(t *testing.T) {
	svc := NewNormalizerService(NormalizerConfig{})

	t.Run("unparseable price becomes zero", func(t *testing.T) {
		menu := svc.NormalizeMenu(domain.RawMenu{
			MenuName: "Dinner Menu",
			Items: []domain.RawMenuItem{
				{Name: "House Burger", Price: "market price"},
				{Name: "Caesar Salad", Price: "$12.50"},
				{Name: "Soup", Price: 8.0},
			},
		})

		if menu.Items[0].Price != 0 {
			t.Errorf("Price = %v, want 0", menu.Items[0].Price)
		}
		if menu.Items[1].Price != 12.5 {
			t.Errorf("Price = %v, want 12.5", menu.Items[1].Price)
		}
		if menu.Items[2].Price != 8 {
			t.Errorf("Price = %v, want 8", menu.Items[2].Price)
		}
	})

	t.Run("unit extracted from size text", func(t *testing.T) {
		menu := svc.NormalizeMenu(domain.RawMenu{
			MenuName: "Drinks",
			Items: []domain.RawMenuItem{
				{Name: "Draft Beer", Size: "16 oz", Price: 7.0},
			},
		})

		if menu.Items[0].Unit != "oz" {
			t.Errorf("Unit = %q, want oz", menu.Items[0].Unit)
		}
	})

	t.Run("category inferred when absent", func(t *testing.T) {
		menu := svc.NormalizeMenu(domain.RawMenu{
			MenuName: "Dinner Menu",
			Items: []domain.RawMenuItem{
				{Name: "Grilled Salmon", Description: "with lemon butter", Price: 24.0},
			},
		})

		if menu.Items[0].Category != "seafood" {
			t.Errorf("Category = %q, want seafood", menu.Items[0].Category)
		}
	})

	t.Run("empty item list warns", func(t *testing.T) {
		menu := svc.NormalizeMenu(domain.RawMenu{})

		if menu.Name != "Untitled Menu" {
			t.Errorf("Name = %q, want Untitled Menu", menu.Name)
		}
		if menu.Items == nil {
			t.Fatal("Items is nil, want empty slice")
		}
		if !hasWarning(menu.Warnings, warnNoMenuItems) {
			t.Errorf("Warnings = %v, want %q", menu.Warnings, warnNoMenuItems)
		}
	})

	t.Run("nameless entries are flagged", func(t *testing.T) {
		menu := svc.NormalizeMenu(domain.RawMenu{
			MenuName: "Lunch Specials",
			Items: []domain.RawMenuItem{
				{Description: "chef's choice", Price: 15.0},
			},
		})

		if !hasWarning(menu.Warnings, warnMissingName) {
			t.Errorf("Warnings = %v, want %q", menu.Warnings, warnMissingName)
		}
	})

	t.Run("confidence stays within bounds", func(t *testing.T) {
		menu := svc.NormalizeMenu(domain.RawMenu{
			MenuName: "Complete Dinner Menu",
			Items: []domain.RawMenuItem{
				{Name: "Grilled Salmon", Description: "with lemon butter", Price: 24.0, Category: "seafood"},
				{Name: "House Burger", Description: "half-pound patty", Price: 16.0, Category: "meat_poultry"},
			},
		})

		if menu.Confidence < 0 || menu.Confidence > 1 {
			t.Errorf("Confidence = %v, out of [0,1]", menu.Confidence)
		}
		if menu.Confidence < 0.7 {
			t.Errorf("Confidence = %v, want >= 0.7 for a complete menu", menu.Confidence)
		}
	})
}

func hasWarning(warnings []string, want string) bool {
	for _, w := range warnings {
		if w == want {
			return true
		}
	}
	return false
}
