package cli

import (
	"bytes"
	"testing"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, &models.Report{
		Files: []models.FileReport{
			{
				Name: "customers.xlsx",
				Sheets: []models.SheetReport{
					{Name: "Sheet1", Columns: []models.ColumnProfile{{Name: "A"}, {Name: "B"}}},
					{Name: "Extra", Empty: true},
				},
			},
			{Name: "broken.xlsx", Err: "bad zip"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "customers.xlsx")
	assert.Contains(t, out, "broken.xlsx")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "error")
}

func TestRenderSummaryNoFiles(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, &models.Report{})
	assert.Equal(t, "No spreadsheet files found.\n", buf.String())
}
