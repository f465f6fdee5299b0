package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"archcost/clouds/aws"
	"archcost/core/engine"
	"archcost/core/pricing"
	"archcost/core/types"
)

type fakeCatalog struct{}

func (fakeCatalog) Query(ctx context.Context, serviceCode string, filters []pricing.Filter) []pricing.PriceRecord {
	if serviceCode != "AmazonEC2" {
		return nil
	}
	return []pricing.PriceRecord{
		{Unit: "Hrs", USD: decimal.RequireFromString("0.0416"), Description: "On Demand Linux t3.medium Instance Hour"},
	}
}

func newTestServer() *Server {
	eng := engine.New(aws.NewRegistry(), fakeCatalog{}, "ap-south-1")
	return NewServer(eng, "test")
}

func TestEstimateEndpoint(t *testing.T) {
	srv := newTestServer()

	body := `{"nodes": [{"id": "web-1", "type": "EC2"}]}`
	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var report types.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if len(report.Breakdown) != 1 {
		t.Errorf("breakdown = %+v", report.Breakdown)
	}
	if !report.TotalHourly.Equal(decimal.RequireFromString("0.0416")) {
		t.Errorf("total hourly = %s", report.TotalHourly)
	}
}

func TestEstimateEndpointRejectsBadDocument(t *testing.T) {
	srv := newTestServer()

	cases := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"missing nodes", `{"title": "x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
