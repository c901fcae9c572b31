package v1

import (
	"net/http"
	"testing"
)

func defaultROIBody() map[string]any {
	return map[string]any{
		"suppliers":                  60,
		"certificates":               180,
		"hourlyCost":                 25,
		"chaseHoursPerWeek":          6,
		"reworkHoursPerWeek":         3,
		"auditHoursPerMonth":         12,
		"delayIncidentsPerYear":      2,
		"avgDelayCost":               8000,
		"complianceIncidentsPerYear": 1,
		"avgComplianceCost":          15000,
	}
}

func TestCalculateROIEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/roi", defaultROIBody())
	if w.Code != http.StatusOK {
		t.Fatalf("roi: %d body=%s", w.Code, w.Body.String())
	}

	var resp roiResponse
	decode(t, w, &resp)

	// (6+3)*52*25 + 12*12*25 + 2*8000 + 1*15000
	if resp.BaselineTotal != 46300 {
		t.Fatalf("baseline = %v, want 46300", resp.BaselineTotal)
	}
	if resp.Basic.Savings != 3060 {
		t.Fatalf("basic savings = %v, want 3060", resp.Basic.Savings)
	}
	if resp.Basic.PaybackMonths == nil {
		t.Fatal("expected basic payback")
	}
	if resp.Display.BaselineTotal != "$46,300" {
		t.Fatalf("display baseline = %s", resp.Display.BaselineTotal)
	}
	// 默认年费来自配置：Basic 1500 / Core 3000
	if resp.Basic.AnnualFee != 1500 || resp.Core.AnnualFee != 3000 {
		t.Fatalf("fees = %v/%v", resp.Basic.AnnualFee, resp.Core.AnnualFee)
	}
}

func TestCalculateROIZeroSavings(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/roi", map[string]any{})
	if w.Code != http.StatusOK {
		t.Fatalf("roi: %d body=%s", w.Code, w.Body.String())
	}

	var resp roiResponse
	decode(t, w, &resp)
	if resp.Basic.PaybackMonths != nil || resp.Core.PaybackMonths != nil {
		t.Fatal("payback must be absent when there are no savings")
	}
}

func TestCalculateROIRejectsBadInput(t *testing.T) {
	r, _ := newTestRouter(t)

	body := defaultROIBody()
	body["hourlyCost"] = -5
	w := doJSON(t, r, http.MethodPost, "/api/roi", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative input: %d body=%s", w.Code, w.Body.String())
	}

	body = defaultROIBody()
	body["chaseHoursPerWeek"] = 500
	w = doJSON(t, r, http.MethodPost, "/api/roi", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of range input: %d body=%s", w.Code, w.Body.String())
	}
}
