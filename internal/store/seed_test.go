package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "halaldesk.db")
	st, err := New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSeedIfEmpty(t *testing.T) {
	st := newTestStore(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := st.SeedIfEmpty(now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	suppliers, err := st.ListSuppliers()
	if err != nil {
		t.Fatalf("list suppliers: %v", err)
	}
	if len(suppliers) == 0 {
		t.Fatal("expected seeded suppliers")
	}

	certs, err := st.ListCertificates(CertQueryOptions{})
	if err != nil {
		t.Fatalf("list certificates: %v", err)
	}
	if len(certs) == 0 {
		t.Fatal("expected seeded certificates")
	}

	// 种子数据必须覆盖已过期与未过期两种情况
	expired, future := false, false
	for _, c := range certs {
		expiry, err := model.ParseDate(c.ExpiryDate)
		if err != nil {
			t.Fatalf("seeded expiry date invalid: %v", err)
		}
		if expiry.Before(now) {
			expired = true
		} else {
			future = true
		}
	}
	if !expired || !future {
		t.Fatalf("seed should contain both expired and future certificates (expired=%v future=%v)", expired, future)
	}

	// 二次调用不能重复写入
	if err := st.SeedIfEmpty(now); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	again, _ := st.ListCertificates(CertQueryOptions{})
	if len(again) != len(certs) {
		t.Fatalf("seed not idempotent: %d != %d", len(again), len(certs))
	}
}

func TestResetDemoDataClearsLogs(t *testing.T) {
	st := newTestStore(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := st.SeedIfEmpty(now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := st.AppendReminder(model.ReminderEntry{
		LoggedAt: "2026-06-01 09:00 UTC",
		Supplier: "Al Noor Foods",
		Reason:   model.ReasonExpiringSoon,
		Channel:  model.ChannelWhatsApp,
	}); err != nil {
		t.Fatalf("append reminder: %v", err)
	}
	if err := st.InsertSubmission(model.Submission{
		ID: "sub-1", SubmittedAt: "2026-06-01 09:00 UTC",
		Supplier: "Al Noor Foods", ExpiryDate: "2027-01-01",
		State: model.SubmissionPending,
	}); err != nil {
		t.Fatalf("insert submission: %v", err)
	}

	if err := st.ResetDemoData(now); err != nil {
		t.Fatalf("reset: %v", err)
	}

	reminders, _ := st.ListReminders()
	if len(reminders) != 0 {
		t.Fatalf("reminders not cleared: %d", len(reminders))
	}
	subs, _ := st.ListSubmissions()
	if len(subs) != 0 {
		t.Fatalf("submissions not cleared: %d", len(subs))
	}
	certs, _ := st.ListCertificates(CertQueryOptions{})
	if len(certs) == 0 {
		t.Fatal("certificates should be re-seeded after reset")
	}
}

func TestNextCertificateID(t *testing.T) {
	st := newTestStore(t)

	id, err := st.NextCertificateID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != "CERT-001" {
		t.Fatalf("first id = %s, want CERT-001", id)
	}

	if err := st.InsertCertificate(model.Certificate{
		ID: id, Supplier: "X", Material: "Y",
		IssueDate: "2026-01-01", ExpiryDate: "2027-01-01",
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	id, err = st.NextCertificateID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != "CERT-002" {
		t.Fatalf("second id = %s, want CERT-002", id)
	}
}

func TestSubmissionQueueOrderAndDelete(t *testing.T) {
	st := newTestStore(t)

	for i, id := range []string{"sub-a", "sub-b", "sub-c"} {
		if err := st.InsertSubmission(model.Submission{
			ID:          id,
			SubmittedAt: "2026-06-01 09:00 UTC",
			Supplier:    "Al Noor Foods",
			ExpiryDate:  "2027-01-01",
			State:       model.SubmissionPending,
		}); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	subs, err := st.ListSubmissions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 3 || subs[0].ID != "sub-c" || subs[2].ID != "sub-a" {
		t.Fatalf("unexpected order: %+v", subs)
	}

	if err := st.DeleteSubmission("sub-b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.DeleteSubmission("sub-b"); err != ErrSubmissionNotFound {
		t.Fatalf("double delete should report not found, got %v", err)
	}
	if _, err := st.GetSubmission("sub-b"); err != ErrSubmissionNotFound {
		t.Fatalf("get after delete should report not found, got %v", err)
	}
}
