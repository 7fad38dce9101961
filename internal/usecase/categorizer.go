package usecase

import "strings"

// DefaultCategory is assigned when no category keyword scores a hit.
const DefaultCategory = "general"

// categoryOrder fixes iteration order so keyword-count ties always resolve
// to the same category.
var categoryOrder = []string{
	"meat_poultry",
	"seafood",
	"produce",
	"dairy",
	"grains_bakery",
	"condiments_spices",
	"beverages",
	"frozen",
	"snacks",
	"cleaning",
	"personal_care",
}

// categoryKeywords is the single canonical keyword table shared by every
// caller that needs category inference.
var categoryKeywords = map[string][]string{
	"meat_poultry": {
		"chicken", "beef", "pork", "turkey", "lamb", "bacon",
		"sausage", "ham", "steak", "veal", "ground meat", "ribs",
	},
	"seafood": {
		"fish", "salmon", "tuna", "shrimp", "crab", "lobster",
		"cod", "tilapia", "scallop", "anchovy", "sardine", "oyster",
	},
	"produce": {
		"apple", "banana", "orange", "lettuce", "tomato", "potato",
		"onion", "carrot", "broccoli", "spinach", "cucumber", "avocado",
		"lemon", "lime", "garlic", "mushroom", "celery", "pepper",
		"berries", "grape", "herb",
	},
	"dairy": {
		"milk", "cheese", "yogurt", "butter", "cream", "egg",
		"mozzarella", "cheddar", "parmesan",
	},
	"grains_bakery": {
		"bread", "rice", "pasta", "flour", "cereal", "oat",
		"tortilla", "bagel", "bun", "noodle", "croissant", "dough",
	},
	"condiments_spices": {
		"ketchup", "mustard", "mayo", "sauce", "dressing", "vinegar",
		"spice", "oregano", "cumin", "paprika", "syrup", "honey",
		"salt", "seasoning",
	},
	"beverages": {
		"juice", "soda", "cola", "coffee", "tea", "water",
		"beer", "wine", "lemonade", "drink", "sparkling",
	},
	"frozen": {
		"frozen", "ice cream", "popsicle", "sorbet", "gelato",
	},
	"snacks": {
		"chips", "crackers", "cookie", "candy", "chocolate",
		"popcorn", "pretzel", "granola", "nuts",
	},
	"cleaning": {
		"cleaner", "detergent", "bleach", "soap", "wipes",
		"sponge", "sanitizer", "degreaser",
	},
	"personal_care": {
		"shampoo", "lotion", "toothpaste", "deodorant", "razor",
		"conditioner", "tissue", "soap bar",
	},
}

// Categorize infers a coarse product category by counting keyword hits over
// the concatenated name, brand, and description. Simple substring
// containment, not word-boundary matching; the category with the most hits
// wins, ties keep the earlier category, and zero hits fall back to
// "general".
func Categorize(name, brand, description string) string {
	text := strings.ToLower(strings.TrimSpace(name + " " + brand + " " + description))
	if text == "" {
		return DefaultCategory
	}

	best := DefaultCategory
	bestHits := 0
	for _, category := range categoryOrder {
		hits := 0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(text, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = category
		}
	}

	return best
}
