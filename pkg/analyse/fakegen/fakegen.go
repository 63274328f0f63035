// Package fakegen synthesizes anonymized example values for column types.
// A Generator only ever sees a type tag and a column name, never sampled
// data.
package fakegen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/unicode/norm"
)

// exampleDomains are reserved domains (RFC 2606), so a generated address
// can never belong to a real mailbox.
var exampleDomains = []string{"example.com", "example.net", "example.org"}

// Generator produces synthetic values from a type tag and a column-name
// hint.
type Generator struct {
	faker *gofakeit.Faker
	rules []HintRule
}

// New returns a Generator. A zero seed draws a random one; tests pass a
// fixed seed for deterministic output. Nil rules fall back to
// DefaultHintRules.
func New(seed uint64, rules []HintRule) *Generator {
	if rules == nil {
		rules = DefaultHintRules()
	}
	folded := make([]HintRule, len(rules))
	for i, rule := range rules {
		kws := make([]string, len(rule.Keywords))
		for j, kw := range rule.Keywords {
			kws[j] = strings.ToLower(norm.NFC.String(kw))
		}
		folded[i] = HintRule{Keywords: kws, Kind: rule.Kind}
	}
	return &Generator{faker: gofakeit.New(seed), rules: folded}
}

// Value returns one synthetic value consistent with the tag, refined by
// the column-name hint.
func (g *Generator) Value(tag models.TypeTag, columnName string) string {
	hint := g.hintFor(columnName)
	switch tag {
	case models.TagName:
		return g.faker.Name()
	case models.TagEmail:
		return g.email()
	case models.TagBoolean:
		return strconv.FormatBool(g.faker.Bool())
	case models.TagInteger:
		switch hint {
		case HintNumber:
			return strconv.Itoa(g.faker.IntRange(100000, 999999))
		case HintPhone:
			return g.faker.Phone()
		default:
			return strconv.Itoa(g.faker.IntRange(1, 9999))
		}
	case models.TagDecimal:
		return fmt.Sprintf("%.2f", g.faker.Float64Range(1, 10000))
	case models.TagDateTime:
		return g.date()
	default:
		return g.text(hint)
	}
}

// text covers the generic text tag, where the header hint carries all the
// shape information there is.
func (g *Generator) text(hint HintKind) string {
	switch hint {
	case HintName:
		return g.faker.Name()
	case HintCompany:
		return g.faker.Company()
	case HintEmail:
		return g.email()
	case HintPhone:
		return g.faker.PhoneFormatted()
	case HintAddress:
		addr := g.faker.Address()
		return fmt.Sprintf("%s, %s %s", addr.Street, addr.Zip, addr.City)
	case HintSSN:
		return g.faker.SSN()
	case HintNumber:
		return strconv.Itoa(g.faker.IntRange(100000, 999999))
	case HintDate:
		return g.date()
	default:
		return g.faker.Word()
	}
}

func (g *Generator) email() string {
	local := strings.ToLower(g.faker.Username())
	return local + "@" + g.faker.RandomString(exampleDomains)
}

func (g *Generator) date() string {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2029, time.December, 31, 0, 0, 0, 0, time.UTC)
	return g.faker.DateRange(start, end).Format("2006-01-02")
}

// hintFor returns the kind of the first rule with a keyword occurring in
// the normalized column name.
func (g *Generator) hintFor(columnName string) HintKind {
	name := strings.ToLower(norm.NFC.String(columnName))
	for _, rule := range g.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule.Kind
			}
		}
	}
	return HintNone
}
