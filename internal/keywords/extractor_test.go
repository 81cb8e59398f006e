package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "merchant with URL and phone number",
			description: "NETFLIX.COM 866-579-7172",
			want:        []string{"NETFLIX"},
		},
		{
			name:        "card payment with reference and date",
			description: "X6374 MP*CARREFOUR REIMS 10/11",
			want:        []string{"CARREFOUR", "REIMS"},
		},
		{
			name:        "instant transfer strips boilerplate",
			description: "VIR INST DE MATHILDE LE CERF",
			want:        []string{"MATHILDE", "CERF"},
		},
		{
			name:        "direct debit strips prefix and account number",
			description: "PRLV SEPA EDF CLIENTS 123456789 01/02/2024",
			want:        []string{"EDF", "CLIENTS"},
		},
		{
			name:        "caps at three keywords",
			description: "CARTE SUPERMARCHE CASINO SAINT DENIS CENTRE",
			want:        []string{"SUPERMARCHE", "CASINO", "SAINT"},
		},
		{
			name:        "lowercase input is normalized",
			description: "carte netflix.com",
			want:        []string{"NETFLIX"},
		},
		{
			name:        "no signal left after stripping",
			description: "CB 12.34",
			want:        nil,
		},
		{
			name:        "purely numeric tokens dropped",
			description: "123 456 789",
			want:        nil,
		},
		{
			name:        "empty description",
			description: "",
			want:        nil,
		},
		{
			name:        "whitespace only",
			description: "   ",
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.description)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_OrderPreserved(t *testing.T) {
	got := Extract("BOULANGERIE MARTIN PARIS")
	assert.Equal(t, []string{"BOULANGERIE", "MARTIN", "PARIS"}, got)
}

func TestBuildPattern(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     string
	}{
		{
			name:     "single keyword",
			keywords: []string{"NETFLIX"},
			want:     "NETFLIX",
		},
		{
			name:     "multiple keywords joined with gap matcher",
			keywords: []string{"CARREFOUR", "REIMS"},
			want:     "CARREFOUR.*REIMS",
		},
		{
			name:     "pattern-special characters escaped",
			keywords: []string{"CANAL+", "C.IC"},
			want:     `CANAL\+.*C\.IC`,
		},
		{
			name:     "no keywords",
			keywords: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPattern(tt.keywords))
		})
	}
}
