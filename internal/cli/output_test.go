package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testReport struct {
	Items []testItem `json:"items" yaml:"items"`
}

type testItem struct {
	Package    string `json:"package" yaml:"package"`
	Constraint string `json:"constraint" yaml:"constraint"`
}

func (r testReport) TableHeader() []string {
	return []string{"Package", "Constraint"}
}

func (r testReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Items))
	for _, item := range r.Items {
		rows = append(rows, []string{item.Package, item.Constraint})
	}
	return rows
}

func sampleReport() testReport {
	return testReport{Items: []testItem{
		{Package: "drupal/core", Constraint: "^8.5.3"},
		{Package: "drupal/lightning", Constraint: "^1.3.0 || ~2.3.0"},
	}}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"table", OutputFormatTable, false},
		{"json", OutputFormatJSON, false},
		{"yaml", OutputFormatYAML, false},
		{"JSON", OutputFormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(OutputFormatJSON, &buf)

	require.NoError(t, p.Print(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, `"package": "drupal/core"`)
	assert.Contains(t, out, `"constraint": "^1.3.0 || ~2.3.0"`)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(OutputFormatYAML, &buf)

	require.NoError(t, p.Print(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "package: drupal/core")
	assert.Contains(t, out, "constraint: ^1.3.0 || ~2.3.0")
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(OutputFormatTable, &buf)

	require.NoError(t, p.Print(sampleReport()))

	out := buf.String()
	// Headers are uppercased; cell text passes through as-is.
	assert.Contains(t, out, "PACKAGE")
	assert.Contains(t, out, "CONSTRAINT")
	assert.Contains(t, out, "drupal/lightning")
	assert.Contains(t, out, "^8.5.3")
	// Rounded style borders.
	assert.Contains(t, out, "╭")
}

func TestPrinter_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(OutputFormatTable, &buf)

	require.NoError(t, p.Print(testReport{}))
	assert.Contains(t, buf.String(), "No items found")
}

func TestPrinter_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter("csv", &buf)

	err := p.Print(sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
