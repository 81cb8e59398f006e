// Package keywords reduces noisy bank description lines to a short, stable
// keyword sequence suitable for durable pattern matching. Bank descriptions
// embed the merchant name among dates, card numbers and transfer references;
// a few ordered keywords survive that drift across repeated occurrences of
// the same merchant.
package keywords

import (
	"regexp"
	"strings"
)

// MaxKeywords caps the number of tokens kept from a description.
const MaxKeywords = 3

var (
	// Date-shaped substrings: 10/11, 03.07.2024, 5-12 and similar.
	dateRe = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}(?:[./-]\d{2,4})?\b`)
	// Long digit runs: card suffixes, account numbers, references.
	digitRunRe = regexp.MustCompile(`\d{4,}`)
	// Punctuation runs become token boundaries.
	punctRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

	numericRe = regexp.MustCompile(`^\d+$`)
)

// boilerplate holds leading tokens banks prepend to descriptions: card
// payment markers, transfer and direct-debit prefixes. They carry no
// merchant signal and are stripped before keyword selection.
var boilerplate = map[string]bool{
	"CB":          true,
	"CARTE":       true,
	"PAIEMENT":    true,
	"ACHAT":       true,
	"PRLV":        true,
	"PRELEVEMENT": true,
	"VIR":         true,
	"VIREMENT":    true,
	"INST":        true,
	"SEPA":        true,
	"RETRAIT":     true,
	"DAB":         true,
	"ECH":         true,
	"EMIS":        true,
	"RECU":        true,
	"DE":          true,
	"WEB":         true,
	"TPE":         true,
}

// stopwords are dropped wherever they appear. Tokens shorter than three
// characters are already filtered, so only longer function words and URL
// fragments are listed.
var stopwords = map[string]bool{
	"LES":  true,
	"DES":  true,
	"AUX":  true,
	"SUR":  true,
	"PAR":  true,
	"POUR": true,
	"CHEZ": true,
	"THE":  true,
	"AND":  true,
	"FOR":  true,
	"COM":  true,
	"WWW":  true,
	"NET":  true,
	"ORG":  true,
}

// Extract returns up to MaxKeywords meaningful tokens from a raw bank
// description, in their original order. Returns an empty slice when the
// description carries no learnable signal.
func Extract(description string) []string {
	text := strings.ToUpper(strings.TrimSpace(description))
	if text == "" {
		return nil
	}

	text = dateRe.ReplaceAllString(text, " ")
	text = digitRunRe.ReplaceAllString(text, " ")
	text = punctRe.ReplaceAllString(text, " ")

	tokens := strings.Fields(text)

	// Strip leading banking boilerplate.
	for len(tokens) > 0 && boilerplate[tokens[0]] {
		tokens = tokens[1:]
	}

	keywords := make([]string, 0, MaxKeywords)
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		if numericRe.MatchString(tok) {
			continue
		}
		if stopwords[tok] {
			continue
		}
		keywords = append(keywords, tok)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}

// BuildPattern turns a keyword sequence into a case-insensitive pattern that
// matches descriptions containing all keywords in that relative order, with
// anything in between. Returns the empty string for no keywords.
func BuildPattern(kws []string) string {
	if len(kws) == 0 {
		return ""
	}
	parts := make([]string, len(kws))
	for i, kw := range kws {
		parts[i] = regexp.QuoteMeta(kw)
	}
	return strings.Join(parts, ".*")
}
