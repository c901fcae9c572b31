// Package auditpack 生成审计包（ZIP 文本包与 XLSX 证书台账）
package auditpack

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

const readmeName = "README_AUDIT_PACK.txt"

const readmeContents = "Demo Audit Pack\n\n" +
	"This is a demo export. In production, this would include the actual PDF certificates and evidence logs.\n"

// Row 审计包里的一条证书记录（含计算出的状态）
type Row struct {
	Certificate model.Certificate
	Status      model.CertStatus
}

func entryName(r Row) string {
	supplier := strings.ReplaceAll(r.Certificate.Supplier, " ", "_")
	material := strings.ReplaceAll(r.Certificate.Material, " ", "_")
	return fmt.Sprintf("%s__%s__%s.txt", r.Certificate.ID, supplier, material)
}

func entryContents(r Row) string {
	c := r.Certificate
	return fmt.Sprintf(
		"Certificate ID: %s\n"+
			"Supplier: %s\n"+
			"Material: %s\n"+
			"Cert Body: %s\n"+
			"Country: %s\n"+
			"Issue Date: %s\n"+
			"Expiry Date: %s\n"+
			"Status: %s\n"+
			"File: %s\n",
		c.ID, c.Supplier, c.Material, c.CertBody, c.Country,
		c.IssueDate, c.ExpiryDate, r.Status, c.FileName,
	)
}

// BuildZip 生成审计包 ZIP
// 固定带一个说明文件，每张证书一个文本文件
func BuildZip(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create(readmeName)
	if err != nil {
		return nil, fmt.Errorf("create readme entry failed: %w", err)
	}
	if _, err := w.Write([]byte(readmeContents)); err != nil {
		return nil, fmt.Errorf("write readme entry failed: %w", err)
	}

	for _, r := range rows {
		w, err := zw.Create(entryName(r))
		if err != nil {
			return nil, fmt.Errorf("create entry for %s failed: %w", r.Certificate.ID, err)
		}
		if _, err := w.Write([]byte(entryContents(r))); err != nil {
			return nil, fmt.Errorf("write entry for %s failed: %w", r.Certificate.ID, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize audit pack zip failed: %w", err)
	}
	return buf.Bytes(), nil
}
