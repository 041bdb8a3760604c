package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Code",
	"Phone",
	"Phone Raw",
	"Purchased At",
	"Allocated At",
	"Paid Amount",
	"Quantity",
}

// Writer wraps csv.Writer for exporting ticket codes as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteTickets converts a batch of export rows to CSV and writes them.
func (w *Writer) WriteTickets(rows []domain.TicketExportRow) error {
	for i := range rows {
		if err := w.csv.Write(ticketToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func ticketToRow(t *domain.TicketExportRow) []string {
	row := make([]string, len(columns))
	row[0] = t.Code
	row[1] = t.PhoneE164
	row[2] = t.PhoneRaw
	row[3] = t.PurchasedAt.Format(time.RFC3339)
	row[4] = t.TicketCreatedAt.Format(time.RFC3339)
	row[5] = strconv.FormatInt(t.PaidAmount, 10)
	row[6] = strconv.Itoa(t.Qty)
	return row
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a raffle title for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_raffle_title}_codes_{YYYY-MM-DD}.csv
func BuildFilename(raffleTitle string) string {
	sanitized := SanitizeFilename(raffleTitle)
	if sanitized == "" {
		sanitized = "raffle"
	}
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_codes_%s.csv", sanitized, date)
}
