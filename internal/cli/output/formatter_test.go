package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string `json:"id" yaml:"id"`
	Lines string `json:"lines" yaml:"lines"`
}

type tabular struct{}

func (tabular) Table() Data {
	return Data{Headers: []string{"ID", "NAME"}, Rows: [][]string{{"pix", "PIX"}}}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", "", false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"wide", "", true},
		{"xml", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatYAML, DetectFormat(FormatYAML, &buf))
	assert.Equal(t, FormatJSON, DetectFormat("", &buf))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, sample{ID: "a", Lines: "x\ny"}))

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample{ID: "a", Lines: "x\ny"}, got)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	in := sample{ID: "pix-a40", Lines: "MSH|^~\\&|APP\nEVN|A40"}
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, in))

	var got sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, in, got)
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, tabular{}))

	out := buf.String()
	assert.Contains(t, out, "pix")
	assert.Contains(t, out, "PIX")
	assert.Contains(t, out, "NAME")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"total": 3}))

	assert.JSONEq(t, `{"total":3}`, buf.String())
}
