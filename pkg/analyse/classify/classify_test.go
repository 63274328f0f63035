package classify

import (
	"testing"
	"time"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		columnName string
		samples    []models.Value
		want       models.TypeTag
	}{
		{
			name:       "all integers",
			columnName: "Age",
			samples: []models.Value{
				models.IntValue(1, "1"),
				models.IntValue(2, "2"),
				models.IntValue(3, "3"),
				models.IntValue(100, "100"),
			},
			want: models.TagInteger,
		},
		{
			name:       "decimals absorb integers",
			columnName: "Amount",
			samples: []models.Value{
				models.FloatValue(1.5, "1.5"),
				models.IntValue(2, "2"),
			},
			want: models.TagDecimal,
		},
		{
			name:       "dates",
			columnName: "Created",
			samples: []models.Value{
				models.TimeValue(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), "2024-01-02"),
				models.TimeValue(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), "2024-03-05"),
			},
			want: models.TagDateTime,
		},
		{
			name:       "booleans",
			columnName: "Active",
			samples: []models.Value{
				models.BoolValue(true, "TRUE"),
				models.BoolValue(false, "FALSE"),
			},
			want: models.TagBoolean,
		},
		{
			name:       "emails",
			columnName: "Contact",
			samples: []models.Value{
				models.TextValue("a@x.com"),
				models.TextValue("b@y.org"),
			},
			want: models.TagEmail,
		},
		{
			name:       "name keyword in header",
			columnName: "Förnamn",
			samples: []models.Value{
				models.TextValue("Anna"),
				models.TextValue("Erik"),
			},
			want: models.TagName,
		},
		{
			name:       "kund header",
			columnName: "Kund",
			samples:    []models.Value{models.TextValue("Anna Svensson")},
			want:       models.TagName,
		},
		{
			name:       "empty sample set",
			columnName: "Whatever",
			samples:    nil,
			want:       models.TagText,
		},
		{
			name:       "mixed numeric and text",
			columnName: "Notes",
			samples: []models.Value{
				models.IntValue(1, "1"),
				models.TextValue("n/a"),
			},
			want: models.TagText,
		},
		{
			name:       "plain text",
			columnName: "Comment",
			samples: []models.Value{
				models.TextValue("hello"),
				models.TextValue("world"),
			},
			want: models.TagText,
		},
		{
			name:       "almost all emails still text at full agreement",
			columnName: "Contact",
			samples: []models.Value{
				models.TextValue("a@x.com"),
				models.TextValue("not an address"),
			},
			want: models.TagText,
		},
	}

	c := New(1, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.columnName, tt.samples))
		})
	}
}

func TestClassifyAgreementThreshold(t *testing.T) {
	samples := []models.Value{
		models.IntValue(1, "1"),
		models.IntValue(2, "2"),
		models.IntValue(3, "3"),
		models.TextValue("n/a"),
	}

	strict := New(1, nil)
	assert.Equal(t, models.TagText, strict.Classify("Count", samples))

	relaxed := New(0.75, nil)
	assert.Equal(t, models.TagInteger, relaxed.Classify("Count", samples))
}

func TestClassifyCustomKeywords(t *testing.T) {
	c := New(1, []string{"mottagare"})
	samples := []models.Value{models.TextValue("Anna")}

	assert.Equal(t, models.TagName, c.Classify("Mottagare", samples))
	// custom keywords replace the defaults
	assert.Equal(t, models.TagText, c.Classify("Namn", samples))
}

func TestClassifyNormalizesHeader(t *testing.T) {
	c := New(1, []string{"förnamn"})
	// decomposed ö (o + combining diaeresis) in the header
	header := "Förnamn"
	assert.Equal(t, models.TagName, c.Classify(header, []models.Value{models.TextValue("Anna")}))
}

func TestDefaultNameKeywordsCopy(t *testing.T) {
	kws := DefaultNameKeywords()
	require.NotEmpty(t, kws)
	kws[0] = "changed"
	assert.Equal(t, "namn", DefaultNameKeywords()[0])
}
