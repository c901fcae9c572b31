package auditpack

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

func sampleRows() []Row {
	return []Row{
		{
			Certificate: model.Certificate{
				ID:         "CERT-001",
				Supplier:   "Al Noor Foods",
				Material:   "Frozen Chicken Breast",
				CertBody:   "Emirates Authority for Standardization",
				Country:    "UAE",
				IssueDate:  "2025-06-01",
				ExpiryDate: "2026-06-01",
				FileName:   "alnoor_chicken_halal_cert.pdf",
			},
			Status: model.StatusValid,
		},
		{
			Certificate: model.Certificate{
				ID:         "CERT-002",
				Supplier:   "Doha Fine Foods",
				Material:   "Croissant Dough",
				ExpiryDate: "2026-01-15",
			},
			Status: model.StatusExpired,
		},
	}
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}

	entries := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(b)
	}
	return entries
}

func TestBuildZipLayout(t *testing.T) {
	t.Parallel()

	data, err := BuildZip(sampleRows())
	if err != nil {
		t.Fatalf("build zip: %v", err)
	}

	entries := readZip(t, data)
	if len(entries) != 3 {
		t.Fatalf("expected README + 2 certificate entries, got %d", len(entries))
	}

	readme, ok := entries["README_AUDIT_PACK.txt"]
	if !ok {
		t.Fatal("missing README_AUDIT_PACK.txt")
	}
	if !strings.Contains(readme, "Demo Audit Pack") {
		t.Fatalf("unexpected README contents: %q", readme)
	}

	// 文件名里的空格换成下划线
	body, ok := entries["CERT-001__Al_Noor_Foods__Frozen_Chicken_Breast.txt"]
	if !ok {
		t.Fatalf("missing certificate entry, have: %v", keys(entries))
	}
	for _, want := range []string{
		"Certificate ID: CERT-001",
		"Supplier: Al Noor Foods",
		"Material: Frozen Chicken Breast",
		"Status: VALID",
		"File: alnoor_chicken_halal_cert.pdf",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("entry missing %q in:\n%s", want, body)
		}
	}

	if _, ok := entries["CERT-002__Doha_Fine_Foods__Croissant_Dough.txt"]; !ok {
		t.Fatalf("missing second certificate entry, have: %v", keys(entries))
	}
}

func TestBuildZipEmptySelection(t *testing.T) {
	t.Parallel()

	// 空选择仍生成只含说明文件的包；是否拒绝由 API 层决定
	data, err := BuildZip(nil)
	if err != nil {
		t.Fatalf("build zip: %v", err)
	}
	entries := readZip(t, data)
	if len(entries) != 1 {
		t.Fatalf("expected README only, got %d entries", len(entries))
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
