// Package classify infers a column's semantic type from sampled values.
package classify

import (
	"regexp"
	"strings"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	deepcopy "github.com/tiendc/go-deepcopy"
	"golang.org/x/text/unicode/norm"
)

// emailPattern is deliberately loose: one @ with a dotted domain suffix.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// defaultNameKeywords mark a header as name-like.
var defaultNameKeywords = []string{"namn", "name", "kund"}

// DefaultNameKeywords returns a copy of the built-in header keywords that
// mark a column as name-like, safe for callers to modify.
func DefaultNameKeywords() []string {
	var kws []string
	if err := deepcopy.Copy(&kws, defaultNameKeywords); err != nil {
		return nil
	}
	return kws
}

// Classifier assigns one TypeTag to a column from its sampled values.
type Classifier struct {
	agreement float64
	keywords  []string
}

// New returns a Classifier. agreement is the fraction of samples a rule
// needs to claim the column, in (0, 1]; values outside that range fall back
// to 1 (every sample). Empty nameKeywords fall back to
// DefaultNameKeywords.
func New(agreement float64, nameKeywords []string) *Classifier {
	if agreement <= 0 || agreement > 1 {
		agreement = 1
	}
	if len(nameKeywords) == 0 {
		nameKeywords = DefaultNameKeywords()
	}
	kws := make([]string, 0, len(nameKeywords))
	for _, kw := range nameKeywords {
		kws = append(kws, fold(kw))
	}
	return &Classifier{agreement: agreement, keywords: kws}
}

// Classify applies the tag rules in priority order and returns the first
// one that reaches the agreement threshold: date/time, boolean, integer,
// decimal, email, then the header-based name hint. Empty and mixed columns
// are plain text.
func (c *Classifier) Classify(columnName string, samples []models.Value) models.TypeTag {
	if len(samples) == 0 {
		return models.TagText
	}
	switch {
	case c.agree(samples, isDateTime):
		return models.TagDateTime
	case c.agree(samples, isBoolean):
		return models.TagBoolean
	case c.agree(samples, isInteger):
		return models.TagInteger
	case c.agree(samples, isDecimal):
		return models.TagDecimal
	case c.agree(samples, isEmail):
		return models.TagEmail
	case c.nameHint(columnName):
		return models.TagName
	default:
		return models.TagText
	}
}

func (c *Classifier) agree(samples []models.Value, match func(models.Value) bool) bool {
	n := 0
	for _, v := range samples {
		if match(v) {
			n++
		}
	}
	return float64(n) >= c.agreement*float64(len(samples))
}

func (c *Classifier) nameHint(columnName string) bool {
	name := fold(columnName)
	for _, kw := range c.keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func isDateTime(v models.Value) bool { return v.Kind == models.KindDateTime }

func isBoolean(v models.Value) bool { return v.Kind == models.KindBoolean }

func isInteger(v models.Value) bool { return v.Kind == models.KindInteger }

// isDecimal accepts integers too: a column mixing 1 and 1.5 is decimal.
func isDecimal(v models.Value) bool {
	return v.Kind == models.KindDecimal || v.Kind == models.KindInteger
}

func isEmail(v models.Value) bool {
	return v.Kind == models.KindText && emailPattern.MatchString(v.Raw)
}

// fold normalizes a header for keyword matching. NFC first so composed and
// decomposed Swedish characters compare equal.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
