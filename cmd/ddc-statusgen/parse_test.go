package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const ddcYAML = `
domain: DDC
file: ddcrc_gen.go
tableVar: ddcrcTable
modulated: true
constants: true
constPrefix: DDC
codes:
  - name: DDCRC_CHECKSUM
    const: Checksum
    value: -3003
    description: checksum error
    deprecated: DDCRC_DDC_DATA
  - name: DDCRC_NULL_RESPONSE
    const: NullResponse
    value: -3006
    description: received DDC null response
    doc: |-
      First line.
      Second line.
  - name: DDCRC_DDC_DATA
    const: Data
    value: -3031
    description: invalid DDC data
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(ddcYAML))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	if table.Domain != "DDC" || table.TableVar != "ddcrcTable" || !table.Modulated || !table.Constants {
		t.Errorf("unexpected header: %+v", table)
	}
	if len(table.Codes) != 3 {
		t.Fatalf("expected 3 codes, got %d", len(table.Codes))
	}
	if table.Codes[0].Deprecated != "DDCRC_DDC_DATA" {
		t.Errorf("Deprecated = %q", table.Codes[0].Deprecated)
	}
	if table.Codes[1].Doc != "First line.\nSecond line." {
		t.Errorf("Doc = %q", table.Codes[1].Doc)
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ddcrc.yaml")
	if err := os.WriteFile(path, []byte(ddcYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTable(path); err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadCheckedInTables(t *testing.T) {
	for _, name := range []string{"ddcrc.yaml", "adl.yaml"} {
		path := filepath.Join("..", "..", "pkg", "status", "tables", name)
		if _, err := LoadTable(path); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestValidateErrors(t *testing.T) {
	valid := func() *RawTable {
		table, err := ParseTable([]byte(ddcYAML))
		if err != nil {
			t.Fatalf("ParseTable failed: %v", err)
		}
		return table
	}

	tests := []struct {
		name   string
		mutate func(*RawTable)
		want   string
	}{
		{"missing domain", func(tb *RawTable) { tb.Domain = "" }, "domain is required"},
		{"bad file", func(tb *RawTable) { tb.File = "Codes.txt" }, "lower-case .go file"},
		{"bad table var", func(tb *RawTable) { tb.TableVar = "9table" }, "not an identifier"},
		{"duplicate name", func(tb *RawTable) { tb.Codes[1].Name = "DDCRC_CHECKSUM" }, "duplicate name"},
		{"duplicate value", func(tb *RawTable) { tb.Codes[1].Value = -3003 }, "already used by DDCRC_CHECKSUM"},
		{"zero value", func(tb *RawTable) { tb.Codes[1].Value = 0 }, "reserved for OK"},
		{"local value in modulated table", func(tb *RawTable) { tb.Codes[1].Value = -6 }, "domain-local range"},
		{"modulated value in local table", func(tb *RawTable) { tb.Modulated = false; tb.Constants = false }, "exceeds 999"},
		{"bad const", func(tb *RawTable) { tb.Codes[2].Const = "" }, "is not an identifier"},
		{"unknown replacement", func(tb *RawTable) { tb.Codes[0].Deprecated = "DDCRC_GONE" }, "unknown code DDCRC_GONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := valid()
			tt.mutate(table)
			err := table.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseTableInvalidYAML(t *testing.T) {
	if _, err := ParseTable([]byte("codes: [")); err == nil {
		t.Error("expected YAML error")
	}
}
