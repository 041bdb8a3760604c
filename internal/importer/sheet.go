package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
)

// ReadWorkbook decodes the first sheet of an .xlsx workbook into raw rows.
// The expected layout is the bank export convention: date, amount, phone in
// the first three columns, one header row. Cells are read raw, so serial
// date numbers come through as digit strings for the date resolver.
func ReadWorkbook(r io.Reader) ([]domain.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSpreadsheet, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrInvalidSpreadsheet
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSpreadsheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	out := make([]domain.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		out = append(out, domain.RawRow{
			PurchasedAt: cellAt(cells, 0),
			Amount:      cellAt(cells, 1),
			Phone:       cellAt(cells, 2),
		})
	}
	return out, nil
}

func cellAt(cells []string, i int) interface{} {
	if i >= len(cells) {
		return nil
	}
	return cells[i]
}
