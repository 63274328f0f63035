package fakegen

import deepcopy "github.com/tiendc/go-deepcopy"

// HintKind selects the shape of fake value a column-name hint asks for.
type HintKind int

const (
	// HintNone means the column name carries no recognized hint.
	HintNone HintKind = iota
	// HintName asks for a person name.
	HintName
	// HintCompany asks for a company name.
	HintCompany
	// HintEmail asks for an email address.
	HintEmail
	// HintPhone asks for a phone number.
	HintPhone
	// HintAddress asks for a street address.
	HintAddress
	// HintSSN asks for a personal identity number.
	HintSSN
	// HintNumber asks for a six-digit reference number.
	HintNumber
	// HintDate asks for a date.
	HintDate
)

// HintRule maps column-name keywords to a HintKind. Keywords match as
// case-insensitive substrings of the normalized column name.
type HintRule struct {
	Keywords []string
	Kind     HintKind
}

// defaultHintRules is ordered: earlier rules win when a header matches
// several keywords, so "Kundnummer" is a name hint rather than a number
// hint.
var defaultHintRules = []HintRule{
	{Keywords: []string{"namn", "name", "kund"}, Kind: HintName},
	{Keywords: []string{"företag", "company", "bolag"}, Kind: HintCompany},
	{Keywords: []string{"epost", "e-post", "email", "mail"}, Kind: HintEmail},
	{Keywords: []string{"telefon", "mobil", "phone"}, Kind: HintPhone},
	{Keywords: []string{"adress", "address"}, Kind: HintAddress},
	{Keywords: []string{"personnummer", "ssn"}, Kind: HintSSN},
	{Keywords: []string{"nummer", "number", "id"}, Kind: HintNumber},
	{Keywords: []string{"datum", "date"}, Kind: HintDate},
}

// DefaultHintRules returns a copy of the built-in hint rules, safe for
// callers to modify.
func DefaultHintRules() []HintRule {
	var rules []HintRule
	if err := deepcopy.Copy(&rules, defaultHintRules); err != nil {
		return nil
	}
	return rules
}
