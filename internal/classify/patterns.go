package classify

import (
	"github.com/centime/centime/internal/model"
)

// CategoryPatterns binds a category to the built-in text patterns that detect
// it. Patterns are plain substrings matched case-insensitively against the
// normalized description and transaction type.
type CategoryPatterns struct {
	CategoryID string
	Type       model.CategoryType
	Patterns   []string
}

// DefaultPatterns returns the built-in pattern table. Categories are iterated
// in this exact order during classification; within a category, patterns are
// tested in order and the first match wins. Earlier entries deliberately
// shadow later ones (AMAZON PRIME resolves before the AMAZON shopping entry).
func DefaultPatterns() []CategoryPatterns {
	return []CategoryPatterns{
		{
			CategoryID: "food-grocery",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"CARREFOUR", "LECLERC", "AUCHAN", "INTERMARCHE", "LIDL",
				"MONOPRIX", "FRANPRIX", "CASINO", "SUPER U", "ALDI",
				"PICARD", "GRAND FRAIS", "BIOCOOP", "NATURALIA",
			},
		},
		{
			CategoryID: "restaurant",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"RESTAURANT", "BRASSERIE", "BOULANGERIE", "MCDONALD",
				"BURGER KING", "KFC", "DELIVEROO", "UBER EATS", "JUST EAT",
				"PIZZA", "SUSHI", "KEBAB",
			},
		},
		{
			CategoryID: "abonnements",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"NETFLIX", "SPOTIFY", "DISNEY", "CANAL+", "CANAL PLUS",
				"AMAZON PRIME", "PRIME VIDEO", "DEEZER", "YOUTUBE PREMIUM",
				"ORANGE", "SFR", "BOUYGUES TEL", "FREE MOBILE", "FREEBOX",
				"ABONNEMENT",
			},
		},
		{
			CategoryID: "transport",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"SNCF", "RATP", "NAVIGO", "OUIGO", "TER ", "UBER",
				"BLABLACAR", "TOTALENERGIES", "TOTAL ", "ESSO", "AVIA",
				"AUTOROUTE", "VINCI", "SANEF", "PARKING", "PEAGE",
			},
		},
		{
			CategoryID: "shopping",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"AMAZON", "FNAC", "DECATHLON", "IKEA", "DARTY",
				"LEROY MERLIN", "CDISCOUNT", "ZALANDO", "ZARA", "H&M",
				"ACTION ", "GIFI",
			},
		},
		{
			CategoryID: "health",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"PHARMACIE", "PHARM", "DOCTOLIB", "LABORATOIRE",
				"MUTUELLE", "OPTIQUE", "DENTAIRE",
			},
		},
		{
			CategoryID: "housing",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"LOYER", "EDF", "ENGIE", "VEOLIA", "SUEZ EAU",
				"ASSURANCE HABITATION", "SYNDIC", "FONCIA",
			},
		},
		{
			CategoryID: "bank-fees",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"COTISATION", "FRAIS BANC", "AGIOS", "COMMISSION INTERVENTION",
				"FRAIS",
			},
		},
		{
			CategoryID: "cash",
			Type:       model.CategoryTypeExpense,
			Patterns: []string{
				"RETRAIT", "DAB", "DISTRIBUTEUR",
			},
		},
		{
			CategoryID: "salary",
			Type:       model.CategoryTypeIncome,
			Patterns: []string{
				"SALAIRE", "PAIE ", "PAYROLL", "REMUNERATION",
			},
		},
		{
			CategoryID: "benefits",
			Type:       model.CategoryTypeIncome,
			Patterns: []string{
				"CAF ", "CPAM", "POLE EMPLOI", "FRANCE TRAVAIL", "AMELI",
			},
		},
		{
			CategoryID: "refunds",
			Type:       model.CategoryTypeIncome,
			Patterns: []string{
				"REMBOURSEMENT", "REMB", "AVOIR",
			},
		},
		{
			CategoryID: "virements-recus",
			Type:       model.CategoryTypeIncome,
			Patterns: []string{
				"VIR INST", "VIREMENT", "VIR",
			},
		},
		{
			// Generic fallback. No patterns: it is only reached through the
			// fallback path, and it is eligible for any direction.
			CategoryID: model.FallbackCategoryID,
			Type:       model.CategoryTypeAny,
		},
	}
}

// DefaultCategories returns the category set matching the pattern table,
// used to seed the category registry.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "food-grocery", Name: "Courses", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "restaurant", Name: "Restaurants", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "abonnements", Name: "Abonnements", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "transport", Name: "Transports", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "shopping", Name: "Shopping", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "health", Name: "Santé", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "housing", Name: "Logement", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "bank-fees", Name: "Frais bancaires", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "cash", Name: "Retraits", Type: model.CategoryTypeExpense, IsActive: true},
		{ID: "salary", Name: "Salaire", Type: model.CategoryTypeIncome, IsActive: true},
		{ID: "benefits", Name: "Prestations", Type: model.CategoryTypeIncome, IsActive: true},
		{ID: "refunds", Name: "Remboursements", Type: model.CategoryTypeIncome, IsActive: true},
		{ID: "virements-recus", Name: "Virements reçus", Type: model.CategoryTypeIncome, IsActive: true},
		{ID: model.FallbackCategoryID, Name: "Autres", Type: model.CategoryTypeAny, IsActive: true},
	}
}
