// Package importer implements the purchase reconciliation core: cell
// normalization, date resolution, phone extraction, row scanning and the
// reconciliation rules that turn messy bank-transfer spreadsheet rows into
// purchase groups.
package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	amountChars   = regexp.MustCompile(`[^\d.\-]`)
)

// invisible whitespace variants seen in real bank exports.
var invisibleSpaces = strings.NewReplacer(
	" ", " ", // no-break space
	" ", " ", // narrow no-break space
	" ", " ", // figure space
	"\uFEFF", " ", // BOM pasted into a cell
)

// NormalizeCell renders a raw cell value to a clean string: invisible space
// variants become ordinary spaces, runs collapse to one, edges are trimmed.
// Never fails; nil and empty input yield the empty string.
func NormalizeCell(raw interface{}) string {
	s := CellString(raw)
	s = invisibleSpaces.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CellString renders a raw cell value as text without normalization.
// Numeric cells are formatted without an exponent so digit runs survive.
func CellString(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CoerceAmount extracts an integer amount from a cell of unknown shape.
// Currency symbols, separators and labels are stripped; the fractional part
// is truncated. Unparsable cells coerce to 0.
func CoerceAmount(raw interface{}) int64 {
	switch v := raw.(type) {
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	}

	s := amountChars.ReplaceAllString(NormalizeCell(raw), "")
	if s == "" || s == "-" || s == "." {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(f)
}
