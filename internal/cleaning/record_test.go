package cleaning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "mixed placeholders and quotes",
			line:     `A,B,-,--,  ,"quoted"`,
			expected: []string{"A", "B", "0", "0", "0", "quoted"},
		},
		{
			name:     "delimiters only",
			line:     ",,",
			expected: []string{"0", "0", "0"},
		},
		{
			name:     "no delimiter",
			line:     "single",
			expected: []string{"single"},
		},
		{
			name:     "empty line is one empty field",
			line:     "",
			expected: []string{"0"},
		},
		{
			name:     "leading delimiter",
			line:     ",a",
			expected: []string{"0", "a"},
		},
		{
			name:     "trailing delimiter keeps trailing field",
			line:     "a,b,",
			expected: []string{"a", "b", "0"},
		},
		{
			name:     "header line cleaned like data",
			line:     `Date,"Temp (C)",Humidity`,
			expected: []string{"Date", "Temp (C)", "Humidity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRecord(tt.line))
		})
	}
}

func TestParseRecordFieldCount(t *testing.T) {
	// k delimiters always yield k+1 fields.
	lines := []string{"a", "a,b", ",,,", "a,,b", ",", "x,y,z,", ",x,"}
	for _, line := range lines {
		want := strings.Count(line, ",") + 1
		assert.Len(t, ParseRecord(line), want, "line %q", line)
	}
}

func TestAppendRecord(t *testing.T) {
	tests := []struct {
		name     string
		fields   []string
		expected string
	}{
		{name: "joins with delimiter", fields: []string{"a", "b", "c"}, expected: "a,b,c\n"},
		{name: "single field", fields: []string{"x"}, expected: "x\n"},
		{name: "empty record emits nothing", fields: nil, expected: ""},
		{name: "sentinels preserved", fields: []string{"0", "0"}, expected: "0,0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(AppendRecord(nil, tt.fields)))
		})
	}
}

func TestAppendRecordReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	out := AppendRecord(buf, []string{"a", "b"})
	assert.Equal(t, "a,b\n", string(out))

	out = AppendRecord(out[:0], []string{"c"})
	assert.Equal(t, "c\n", string(out))
}
