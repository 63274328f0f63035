package report

import (
	"strings"
	"testing"
	"time"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *models.Report {
	return &models.Report{
		Title:       "Excel File Analysis",
		GeneratedAt: time.Date(2025, time.June, 1, 12, 30, 0, 0, time.UTC),
		Files: []models.FileReport{
			{
				Name: "customers.xlsx",
				Sheets: []models.SheetReport{
					{
						Name: "Sheet1",
						Columns: []models.ColumnProfile{
							{Name: "Namn", Type: models.TagName, Format: "Aaaa", Fake: "Eva Berg"},
							{Name: "Age", Type: models.TagInteger, Format: "99", Fake: "37"},
						},
					},
					{Name: "Extra", Empty: true},
				},
			},
			{
				Name: "broken.xlsx",
				Err:  "zip: not a valid zip file",
			},
		},
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown(testReport())

	assert.True(t, strings.HasPrefix(got, "# Excel File Analysis\n\n"))
	assert.Contains(t, got, "Generated: 2025-06-01 12:30:00\n")

	assert.Contains(t, got, "## customers.xlsx\n")
	assert.Contains(t, got, "### Sheet1\n")
	assert.Contains(t, got, "| Column | Type | Format example | Fake example |\n|---|---|---|---|\n")
	assert.Contains(t, got, "| Namn | name-like text | Aaaa | Eva Berg |\n")
	assert.Contains(t, got, "| Age | integer | 99 | 37 |\n")
	assert.Contains(t, got, "### Extra\n\n*(This sheet is empty.)*\n")

	assert.Contains(t, got, "## broken.xlsx\n\n*Error: could not read file*\n")
	// the underlying error text stays out of the report
	assert.NotContains(t, got, "zip: not a valid zip file")
}

func TestMarkdownNoFiles(t *testing.T) {
	r := &models.Report{
		Title:       "Excel File Analysis",
		GeneratedAt: time.Date(2025, time.June, 1, 12, 30, 0, 0, time.UTC),
	}
	got := Markdown(r)
	assert.Contains(t, got, "# Excel File Analysis\n")
	assert.Contains(t, got, "No spreadsheet files found.\n")
	assert.NotContains(t, got, "##")
}

func TestMarkdownSheetError(t *testing.T) {
	r := testReport()
	r.Files[0].Sheets[0] = models.SheetReport{Name: "Sheet1", Err: "boom"}

	got := Markdown(r)
	assert.Contains(t, got, "### Sheet1\n\n*Error: could not read sheet*\n")
	assert.NotContains(t, got, "boom")
}

func TestMarkdownDeterministicStructure(t *testing.T) {
	assert.Equal(t, Markdown(testReport()), Markdown(testReport()))
}

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a|b", `a\|b`},
		{`a\b`, `a\\b`},
		{"line1\nline2", "line1 line2"},
		{"line1\r\nline2", "line1 line2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeCell(tt.in))
	}
}

func TestToJSON(t *testing.T) {
	compact, err := ToJSON(testReport(), false)
	require.NoError(t, err)
	assert.Contains(t, string(compact), `"title":"Excel File Analysis"`)
	assert.Contains(t, string(compact), `"customers.xlsx"`)

	pretty, err := ToJSON(testReport(), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"title\": \"Excel File Analysis\"")
}
