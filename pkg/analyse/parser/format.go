package parser

import (
	"fmt"
	"unicode"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	"github.com/xuri/excelize/v2"
)

// maskMaxLen bounds the masked pattern so long text cells keep the report
// table readable.
const maskMaxLen = 24

// builtInNumFmt maps built-in numFmtId values to their canonical format
// strings as defined by ECMA-376 §18.8.30. IDs 27-36 and 50-58 are
// locale-specific date formats; neutral Western fallbacks are used here.
var builtInNumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `($#,##0_);($#,##0)`,
	6:  `($#,##0_);[Red]($#,##0)`,
	7:  `($#,##0.00_);($#,##0.00)`,
	8:  `($#,##0.00_);[Red]($#,##0.00)`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "hh:mm",
	21: "hh:mm:ss",
	22: "m/d/yy hh:mm",
	27: "MM-DD-YYYY",
	28: "D-MMM-YY",
	29: "D-MMM-YY",
	30: "M/D/YY",
	31: "YYYY-M-D",
	32: "H:MM",
	33: "H:MM:SS",
	34: "H:MM AM/PM",
	35: "H:MM:SS AM/PM",
	36: "MM-DD-YYYY",
	37: `(#,##0_);(#,##0)`,
	38: `(#,##0_);[Red](#,##0)`,
	39: `(#,##0.00_);(#,##0.00)`,
	40: `(#,##0.00_);[Red](#,##0.00)`,
	41: `_(* #,##0_);_(* (#,##0);_(* "-"_);_(@_)`,
	42: `_($* #,##0_);_($* (#,##0);_($* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* (#,##0.00);_(* "-"??_);_(@_)`,
	44: `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
	49: "@",
	50: "MM-DD-YYYY",
	51: "D-MMM-YY",
	52: "H:MM AM/PM",
	53: "H:MM:SS AM/PM",
	54: "D-MMM-YY",
	55: "H:MM AM/PM",
	56: "H:MM:SS AM/PM",
	57: "MM-DD-YYYY",
	58: "D-MMM-YY",
}

// formatString returns the effective number-format string of a style: the
// custom format when set, or the built-in string for its numFmtId.
func formatString(style *excelize.Style) string {
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		return *style.CustomNumFmt
	}
	return builtInNumFmt[style.NumFmt]
}

// isDateFormat reports whether a number format renders dates or times.
// Built-in IDs are matched directly; custom format strings are scanned for
// date token characters outside quoted literals and bracketed sections.
func isDateFormat(id int, fmtStr string) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	if id != 0 && id < 164 {
		return false
	}

	inQuote := false
	inBracket := false
	escaped := false
	for _, ch := range fmtStr {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '\\':
			escaped = true
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == 'y' || ch == 'Y' ||
			ch == 'm' || ch == 'M' ||
			ch == 'd' || ch == 'D' ||
			ch == 'h' || ch == 'H' ||
			ch == 's' || ch == 'S':
			return true
		}
	}
	return false
}

// maskPattern replaces digits with 9 and letters with A/a so the report
// shows the shape of a sampled value without echoing the value itself.
func maskPattern(s string) string {
	masked := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			masked = append(masked, '9')
		case unicode.IsUpper(r):
			masked = append(masked, 'A')
		case unicode.IsLetter(r):
			masked = append(masked, 'a')
		default:
			masked = append(masked, r)
		}
		if len(masked) >= maskMaxLen {
			return string(masked) + "..."
		}
	}
	return string(masked)
}

// formatDescriptor builds the Format column for a sampled column: the
// cell's number-format string when one is set, otherwise a masked pattern
// of the first sample. Bold and wrapped-text markers are appended from the
// cell style. Raw values never appear verbatim.
func formatDescriptor(f *excelize.File, sheetName, cell string, first models.Value) string {
	var style *excelize.Style
	if idx, err := f.GetCellStyle(sheetName, cell); err == nil {
		if st, err := f.GetStyle(idx); err == nil {
			style = st
		}
	}

	desc := ""
	if style != nil {
		if code := formatString(style); code != "" && code != "General" {
			desc = fmt.Sprintf("%q", code)
		}
	}
	if desc == "" {
		if first.Kind == models.KindBoolean {
			desc = "TRUE/FALSE"
		} else {
			desc = maskPattern(first.Raw)
		}
	}

	if style != nil {
		if style.Font != nil && style.Font.Bold {
			desc += ", bold"
		}
		if style.Alignment != nil && style.Alignment.WrapText {
			desc += ", wrapped"
		}
	}
	return desc
}
