package analyse

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/classify"
	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/fakegen"
	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/parser"
	"github.com/xuri/excelize/v2"
)

// ReportTitle is the heading of every generated report.
const ReportTitle = "Excel File Analysis"

// Analyzer profiles the columns of Excel workbooks.
type Analyzer struct {
	opts       Options
	classifier *classify.Classifier
	gen        *fakegen.Generator
	log        *slog.Logger
}

// New returns an Analyzer with opts normalized.
func New(opts Options) *Analyzer {
	opts = opts.normalized()
	return &Analyzer{
		opts:       opts,
		classifier: classify.New(opts.Agreement, opts.NameKeywords),
		gen:        fakegen.New(opts.Seed, nil),
		log:        opts.Logger,
	}
}

// Directory analyses every candidate workbook in dir (non-recursive) and
// returns the collected report. A workbook that cannot be read is recorded
// as an error entry and never aborts the run; the error return is reserved
// for the directory read itself.
func (a *Analyzer) Directory(dir string) (*models.Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	report := &models.Report{Title: ReportTitle, GeneratedAt: a.opts.Now()}
	for _, entry := range entries {
		if entry.IsDir() || !isWorkbookName(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		a.log.Info("analysing file", "file", entry.Name())
		fileReport, err := a.File(path)
		if err != nil {
			a.log.Warn("could not read file", "file", entry.Name(), "error", err)
			report.Files = append(report.Files, models.FileReport{
				Name: entry.Name(),
				Err:  err.Error(),
			})
			continue
		}
		report.Files = append(report.Files, *fileReport)
	}

	a.log.Info("analysis complete", "files", len(report.Files))
	return report, nil
}

// File analyses a single workbook.
func (a *Analyzer) File(path string) (*models.FileReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewFileError(path, err)
	}
	defer f.Close()

	fileReport := &models.FileReport{Name: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		fileReport.Sheets = append(fileReport.Sheets, a.analyseSheet(f, sheetName))
	}
	return fileReport, nil
}

// analyseSheet samples every column of a sheet and builds its profiles.
// A sheet that cannot be read gets an error entry; the file keeps going.
func (a *Analyzer) analyseSheet(f *excelize.File, sheetName string) models.SheetReport {
	sheet := models.SheetReport{Name: sheetName}

	cols, err := parser.ExtractColumns(f, sheetName, a.opts.SampleSize)
	if err != nil {
		a.log.Warn("could not read sheet", "sheet", sheetName, "error", err)
		sheet.Err = err.Error()
		return sheet
	}
	if len(cols) == 0 {
		sheet.Empty = true
		return sheet
	}

	for _, col := range cols {
		tag := a.classifier.Classify(col.Name, col.Values)
		sheet.Columns = append(sheet.Columns, models.ColumnProfile{
			Name:   col.Name,
			Type:   tag,
			Format: col.Format,
			Fake:   a.fakeFor(tag, col),
		})
		a.log.Debug("column profiled", "sheet", sheetName, "column", col.Name, "type", string(tag))
	}
	return sheet
}

// fakeFor draws a synthetic value for a column, re-drawing while the
// candidate collides with a sampled value. Near-exhaustible value spaces
// (booleans) can use up all attempts; flipping case then keeps the value
// distinct from every sample.
func (a *Analyzer) fakeFor(tag models.TypeTag, col parser.Column) string {
	seen := make(map[string]struct{}, len(col.Values))
	for _, v := range col.Values {
		seen[v.Raw] = struct{}{}
	}

	candidate := ""
	for i := 0; i < a.opts.MaxFakeAttempts; i++ {
		candidate = a.gen.Value(tag, col.Name)
		if _, taken := seen[candidate]; !taken {
			return candidate
		}
	}
	if flipped := strings.ToUpper(candidate); flipped != candidate {
		if _, taken := seen[flipped]; !taken {
			return flipped
		}
	}
	if flipped := strings.ToLower(candidate); flipped != candidate {
		if _, taken := seen[flipped]; !taken {
			return flipped
		}
	}
	return candidate + " (synthetic)"
}

// isWorkbookName reports whether a directory entry looks like a readable
// workbook: .xlsx extension, not an Excel lock file ("~" prefix).
func isWorkbookName(name string) bool {
	if strings.HasPrefix(name, "~") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".xlsx")
}
