package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "table", input: "table", want: FormatTable},
		{name: "empty defaults to table", input: "", want: FormatTable},
		{name: "json", input: "json", want: FormatJSON},
		{name: "JSON uppercase", input: "JSON", want: FormatJSON},
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "yml alias", input: "yml", want: FormatYAML},
		{name: "whitespace trimmed", input: "  table  ", want: FormatTable},
		{name: "invalid format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "table", FormatTable.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestPrinterPrintDispatch(t *testing.T) {
	entry := testEntry{Mount: "/proc", Category: "virtual"}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatJSON, false).Print(entry))
	assert.Contains(t, buf.String(), `"mount": "/proc"`)

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatYAML, false).Print(entry))
	assert.Contains(t, buf.String(), "category: virtual")

	// Table format renders a TableRenderer, otherwise falls back to JSON.
	buf.Reset()
	table := NewTableData("Mount", "Category")
	table.AddRow("/proc", "virtual")
	require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(table))
	assert.Contains(t, buf.String(), "/proc")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(entry))
	assert.Contains(t, buf.String(), `"mount": "/proc"`)
}

func TestPrinterWarning(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, FormatTable, false).Warning("line 2 skipped")
	assert.Equal(t, "line 2 skipped\n", buf.String())

	buf.Reset()
	NewPrinter(&buf, FormatTable, true).Warning("line 2 skipped")
	assert.Equal(t, "\033[33mline 2 skipped\033[0m\n", buf.String())
}
