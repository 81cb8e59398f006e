package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centime/centime/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestCategorizer_BuiltinPatterns(t *testing.T) {
	c := New(DefaultPatterns())

	tests := []struct {
		name        string
		description string
		txnType     string
		isExpense   *bool
		want        string
	}{
		{
			name:        "grocery card payment with noise",
			description: "X6374 MP*CARREFOUR REIMS 10/11",
			txnType:     "CB",
			isExpense:   boolPtr(true),
			want:        "food-grocery",
		},
		{
			name:        "incoming instant transfer",
			description: "VIR INST DE MATHILDE LE CERF",
			isExpense:   boolPtr(false),
			want:        "virements-recus",
		},
		{
			name:        "streaming subscription",
			description: "NETFLIX.COM 866-579-7172",
			isExpense:   boolPtr(true),
			want:        "abonnements",
		},
		{
			name:        "amazon prime resolves before amazon shopping",
			description: "AMAZON PRIME FR",
			isExpense:   boolPtr(true),
			want:        "abonnements",
		},
		{
			name:        "plain amazon is shopping",
			description: "AMAZON EU SARL",
			isExpense:   boolPtr(true),
			want:        "shopping",
		},
		{
			name:        "cash withdrawal by type field",
			description: "F ST DENIS 75010",
			txnType:     "RETRAIT DAB",
			isExpense:   boolPtr(true),
			want:        "cash",
		},
		{
			name:        "expense never lands in an income category",
			description: "SALAIRE JUIN",
			isExpense:   boolPtr(true),
			want:        model.FallbackCategoryID,
		},
		{
			name:        "income never lands in an expense category",
			description: "CARREFOUR REIMS",
			isExpense:   boolPtr(false),
			want:        model.FallbackCategoryID,
		},
		{
			name:        "unknown direction may use any category",
			description: "SALAIRE JUIN",
			want:        "salary",
		},
		{
			name:        "nothing matches falls back to generic bucket",
			description: "QUINCAILLERIE DUPONT",
			isExpense:   boolPtr(true),
			want:        model.FallbackCategoryID,
		},
		{
			name:        "empty description falls back",
			description: "",
			want:        model.FallbackCategoryID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.description, tt.txnType, tt.isExpense)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorizer_UserRulesWinOverBuiltins(t *testing.T) {
	// Scenario: a user rule targeting a custom category coexists with the
	// built-in grocery entry matching the same merchant.
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 1, CategoryID: "custom-grocery", Pattern: "CARREFOUR", Field: model.FieldDescription, Priority: 100, IsActive: true},
	})

	got := c.Classify("X6374 MP*CARREFOUR REIMS 10/11", "CB", boolPtr(true))
	assert.Equal(t, "custom-grocery", got)
}

func TestCategorizer_UserRulesBypassDirectionPartition(t *testing.T) {
	// The user explicitly chose the target category, so the income/expense
	// partition does not filter rule matches.
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 1, CategoryID: "salary", Pattern: "ACOMPTE", Field: model.FieldDescription, Priority: 100, IsActive: true},
	})

	got := c.Classify("ACOMPTE SUR SALAIRE", "", boolPtr(true))
	assert.Equal(t, "salary", got)
}

func TestCategorizer_RulePriorityOrder(t *testing.T) {
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 1, CategoryID: "low-wins-never", Pattern: "NETFLIX", Field: model.FieldDescription, Priority: 10, IsActive: true},
		{ID: 2, CategoryID: "high-wins", Pattern: "NETFLIX", Field: model.FieldDescription, Priority: 200, IsActive: true},
	})

	got := c.Classify("NETFLIX.COM", "", boolPtr(true))
	assert.Equal(t, "high-wins", got)
}

func TestCategorizer_RulePriorityTieKeepsInsertionOrder(t *testing.T) {
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 7, CategoryID: "first-inserted", Pattern: "NETFLIX", Field: model.FieldDescription, Priority: 100, IsActive: true},
		{ID: 8, CategoryID: "second-inserted", Pattern: "NETFLIX", Field: model.FieldDescription, Priority: 100, IsActive: true},
	})

	got := c.Classify("NETFLIX.COM", "", boolPtr(true))
	assert.Equal(t, "first-inserted", got)
}

func TestCategorizer_RuleFieldSelectsTransactionAttribute(t *testing.T) {
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 1, CategoryID: "by-type", Pattern: "^CHEQUE", Field: model.FieldType, Priority: 100, IsActive: true},
	})

	assert.Equal(t, "by-type", c.Classify("CHQ 0001234", "CHEQUE", boolPtr(true)))
	// The pattern is tested against the type field only, not the description.
	assert.NotEqual(t, "by-type", c.Classify("CHEQUE EMIS", "CB", boolPtr(true)))
}

func TestCategorizer_InvalidRulePatternSkipped(t *testing.T) {
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 1, CategoryID: "broken", Pattern: "NETFLIX(", Field: model.FieldDescription, Priority: 200, IsActive: true},
		{ID: 2, CategoryID: "valid", Pattern: "NETFLIX", Field: model.FieldDescription, Priority: 100, IsActive: true},
	})

	// The broken rule must not abort classification; the next rule applies.
	got := c.Classify("NETFLIX.COM", "", boolPtr(true))
	assert.Equal(t, "valid", got)
}

func TestCategorizer_InactiveRuleIgnored(t *testing.T) {
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 1, CategoryID: "disabled", Pattern: "NETFLIX", Field: model.FieldDescription, Priority: 200, IsActive: false},
	})

	got := c.Classify("NETFLIX.COM", "", boolPtr(true))
	assert.Equal(t, "abonnements", got)
}

func TestCategorizer_SetRulesReplacesWholesale(t *testing.T) {
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 1, CategoryID: "custom", Pattern: "NETFLIX", Field: model.FieldDescription, Priority: 100, IsActive: true},
	})
	require.Equal(t, "custom", c.Classify("NETFLIX.COM", "", boolPtr(true)))

	c.SetRules(nil)
	assert.Equal(t, "abonnements", c.Classify("NETFLIX.COM", "", boolPtr(true)))
}

func TestCategorizer_Deterministic(t *testing.T) {
	c := New(DefaultPatterns())
	first := c.Classify("UBER EATS PARIS", "CB", boolPtr(true))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify("UBER EATS PARIS", "CB", boolPtr(true)))
	}
}

func TestCategorizer_NoFallbackConfigured(t *testing.T) {
	table := []CategoryPatterns{
		{CategoryID: "food-grocery", Type: model.CategoryTypeExpense, Patterns: []string{"CARREFOUR"}},
	}
	c := New(table)

	assert.Equal(t, "food-grocery", c.Classify("CARREFOUR", "", boolPtr(true)))
	assert.Equal(t, "", c.Classify("NOTHING MATCHES", "", boolPtr(true)))
}

func TestClassifyDetail_Source(t *testing.T) {
	c := New(DefaultPatterns())
	c.SetRules([]model.CategorizationRule{
		{ID: 42, CategoryID: "custom", Pattern: "NETFLIX", Field: model.FieldDescription, Priority: 100, IsActive: true},
	})

	res := c.ClassifyDetail("NETFLIX.COM", "", boolPtr(true))
	assert.Equal(t, model.SourceRule, res.Source)
	assert.Equal(t, int64(42), res.RuleID)

	res = c.ClassifyDetail("CARREFOUR REIMS", "", boolPtr(true))
	assert.Equal(t, model.SourceBuiltin, res.Source)

	res = c.ClassifyDetail("QUINCAILLERIE DUPONT", "", boolPtr(true))
	assert.Equal(t, model.SourceFallback, res.Source)
	assert.Equal(t, model.FallbackCategoryID, res.CategoryID)
}

func TestDefaultPatterns_CategoriesConsistent(t *testing.T) {
	categories := make(map[string]model.CategoryType)
	for _, cat := range DefaultCategories() {
		categories[cat.ID] = cat.Type
	}

	sawFallback := false
	for _, entry := range DefaultPatterns() {
		catType, ok := categories[entry.CategoryID]
		require.True(t, ok, "pattern table references unknown category %q", entry.CategoryID)
		assert.Equal(t, catType, entry.Type, "class mismatch for %q", entry.CategoryID)
		if entry.CategoryID == model.FallbackCategoryID {
			sawFallback = true
		}
	}
	assert.True(t, sawFallback, "pattern table must include the fallback bucket")
}
