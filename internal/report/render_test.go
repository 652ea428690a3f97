package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sweeper/sweeper/internal/types"
)

func sample() []types.ScanResult {
	return []types.ScanResult{
		{
			Path: "a.js",
			Findings: []types.Finding{
				{Path: "a.js", Line: 3, Column: 5, Match: "AKIA...", Pattern: "AWS Access Key ID", Severity: types.SevError, Message: "aws"},
				{Path: "a.js", Line: 9, Column: 1, Match: "alice@corp.io", Pattern: "Email Address", Severity: types.SevWarning, Message: "email"},
			},
		},
		{Path: "locked.js", Error: "permission denied"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sample())
	if s.Files != 1 || s.Findings != 2 || s.Errors != 1 || s.Warnings != 1 || s.ReadFails != 1 {
		t.Fatalf("summary = %+v", s)
	}
}

func TestShouldFail(t *testing.T) {
	if !ShouldFail(sample()) {
		t.Fatal("error-severity finding must fail the scan")
	}
	warnOnly := []types.ScanResult{{Path: "a.js", Findings: []types.Finding{{Severity: types.SevWarning}}}}
	if ShouldFail(warnOnly) {
		t.Fatal("warnings alone must not fail the scan")
	}
	if ShouldFail(nil) {
		t.Fatal("empty scan must not fail")
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{NoColor: true, FilesScanned: 2})
	out := buf.String()
	for _, want := range []string{"AWS Access Key ID", "a.js:3:5", "could not read locked.js", "Findings: 2 (errors: 1, warnings: 1)", "Files scanned: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "No secrets found") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestWriteJSONShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Results []types.ScanResult `json:"results"`
		Summary Summary            `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Results) != 2 || doc.Summary.Findings != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	// Secret is the internal identity key; it must never serialize
	if strings.Contains(buf.String(), `"Secret"`) || strings.Contains(buf.String(), `"secret"`) {
		t.Fatal("secret field leaked into JSON")
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"results": []`) {
		t.Fatalf("nil results must encode as []: %s", buf.String())
	}
}

func TestWriteRemediationJSON(t *testing.T) {
	var buf bytes.Buffer
	res := types.RemediationResult{Success: true, Message: "ok"}
	if err := WriteRemediationJSON(&buf, res); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"envVars": []`) {
		t.Fatalf("nil slices must encode as []: %s", buf.String())
	}
}
