package domain

// BarcodeFormat identifies the symbology detected for a scanned barcode.
type BarcodeFormat string

const (
	FormatUPCA    BarcodeFormat = "UPC-A"
	FormatEAN13   BarcodeFormat = "EAN-13"
	FormatEAN8    BarcodeFormat = "EAN-8"
	FormatUPCE    BarcodeFormat = "UPC-E"
	FormatInvalid BarcodeFormat = "invalid"
)

// BarcodeValidation is the result of validating a scanned barcode string.
// Invalid input is a normal result, not an error.
type BarcodeValidation struct {
	Valid  bool          `json:"isValid"`
	Format BarcodeFormat `json:"format,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// Product is candidate product data from a barcode lookup or recipe/menu
// extraction. It is never mutated after scoring; re-scoring produces a new
// value.
type Product struct {
	ID          string  `json:"id,omitempty"` // set when re-checking an existing record
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Size        string  `json:"size,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Barcode     string  `json:"barcode,omitempty"`
	Confidence  float64 `json:"confidence"`
}

// InventoryCandidate is a read-only projection of an existing inventory
// record, owned by the storage layer. The core only ranks it.
type InventoryCandidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Category string `json:"category,omitempty"`
	Barcode  string `json:"barcode,omitempty"`
}

// MatchType labels how a match or duplicate candidate was found.
type MatchType string

const (
	MatchExactBarcode    MatchType = "exact_barcode"
	MatchFuzzy           MatchType = "fuzzy"
	MatchExactName       MatchType = "exact_name"
	MatchBrandSimilarity MatchType = "brand_similarity"
)

// MatchResult pairs an inventory candidate with its match score in [0,1].
// Produced fresh per matching call; the caller decides whether to act on it.
type MatchResult struct {
	Candidate InventoryCandidate `json:"candidate"`
	Score     float64            `json:"score"`
	MatchType MatchType          `json:"matchType"`
}

// DuplicateCandidate is an existing record flagged as a likely duplicate of
// a new product.
type DuplicateCandidate struct {
	Candidate  InventoryCandidate `json:"candidate"`
	Similarity float64            `json:"similarity"`
	MatchType  MatchType          `json:"matchType"`
}

// RawIngredient is one ingredient entry as delivered by the external
// text-extraction step. Quantity and confidence arrive untyped because LLM
// and OCR output mixes numbers, fraction strings, and garbage.
type RawIngredient struct {
	Quantity    any    `json:"quantity"`
	Unit        string `json:"unit"`
	Name        string `json:"name"`
	Preparation string `json:"preparation"`
	Category    string `json:"category"`
	Confidence  any    `json:"confidence"`
}

// RawRecipe is the already-parsed JSON handed over by the text-extraction
// collaborator. Every field is suspect until normalized.
type RawRecipe struct {
	RecipeName   string          `json:"recipe_name"`
	Servings     any             `json:"servings"`
	Ingredients  []RawIngredient `json:"ingredients"`
	Instructions []string        `json:"instructions"`
	Confidence   any             `json:"confidence"`
}

// ParsedIngredient is a validated ingredient record. Quantity is kept as a
// decimal string ("" when the extraction had none) so the review UI can show
// exactly what will be saved.
type ParsedIngredient struct {
	Quantity    string  `json:"quantity"`
	Unit        string  `json:"unit"`
	Name        string  `json:"name"`
	Preparation string  `json:"preparation"`
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
}

// NormalizedRecipe is the output of recipe normalization. Warnings flag
// low-quality extractions for human review instead of failing the request.
type NormalizedRecipe struct {
	Name         string             `json:"name"`
	Servings     int                `json:"servings"`
	Ingredients  []ParsedIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Confidence   float64            `json:"confidence"`
	Warnings     []string           `json:"warnings"`
}

// RawMenuItem is one menu entry from the external extraction step.
type RawMenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	Category    string `json:"category"`
	Size        string `json:"size"`
	Confidence  any    `json:"confidence"`
}

// RawMenu is an extracted menu dump (spreadsheet import or OCR).
type RawMenu struct {
	MenuName   string        `json:"menu_name"`
	Items      []RawMenuItem `json:"items"`
	Confidence any           `json:"confidence"`
}

// ParsedMenuItem is a validated menu item record.
type ParsedMenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Confidence  float64 `json:"confidence"`
}

// NormalizedMenu is the output of menu normalization.
type NormalizedMenu struct {
	Name       string           `json:"name"`
	Items      []ParsedMenuItem `json:"items"`
	Confidence float64          `json:"confidence"`
	Warnings   []string         `json:"warnings"`
}
