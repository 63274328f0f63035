package report

import (
	"encoding/json"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
)

// ToJSON serializes the report model for machine consumption.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
