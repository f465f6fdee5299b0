package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"archcost/core/types"
)

func sampleReport() *types.Report {
	r := &types.Report{
		Breakdown: []types.Breakdown{
			{
				NodeID:      "web-1",
				ServiceType: "EC2",
				Label:       "Web server",
				HourlyCost:  decimal.RequireFromString("0.0416"),
			},
		},
		Warnings: []types.Warning{
			{NodeID: "exotic-1", Reason: "unrecognized service type: QuantumCompute"},
		},
	}
	r.Summarize()
	return r
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONFormatter{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded types.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Breakdown) != 1 || len(decoded.Warnings) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestJSONFormatterDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := (JSONFormatter{}).Render(&a, sampleReport()); err != nil {
		t.Fatal(err)
	}
	if err := (JSONFormatter{}).Render(&b, sampleReport()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical reports rendered differently")
	}
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (CLIFormatter{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"EC2", "Web server", "TOTAL", "Warnings (1)", "exotic-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestForFormat(t *testing.T) {
	if _, ok := ForFormat(FormatJSON); !ok {
		t.Error("json formatter missing")
	}
	if _, ok := ForFormat(FormatCLI); !ok {
		t.Error("cli formatter missing")
	}
	if _, ok := ForFormat("yaml"); ok {
		t.Error("unknown format should not resolve")
	}
}
