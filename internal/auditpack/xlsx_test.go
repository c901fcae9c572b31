package auditpack

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestBuildRegister(t *testing.T) {
	t.Parallel()

	rows := []RegisterRow{
		{Row: sampleRows()[0], DaysUntilExpiry: 120},
		{Row: sampleRows()[1], DaysUntilExpiry: -18},
	}

	f, err := BuildRegister(rows)
	if err != nil {
		t.Fatalf("build register: %v", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	reopened, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer reopened.Close()

	sheets := reopened.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Certificate Register" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	cells, err := reopened.GetRows("Certificate Register")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(cells))
	}
	if cells[0][0] != "Certificate ID" || cells[0][9] != "Status" {
		t.Fatalf("unexpected header row: %v", cells[0])
	}
	if cells[1][0] != "CERT-001" || cells[1][9] != "VALID" {
		t.Fatalf("unexpected first data row: %v", cells[1])
	}
	if cells[2][8] != "-18" {
		t.Fatalf("unexpected days-until-expiry cell: %v", cells[2])
	}
}
