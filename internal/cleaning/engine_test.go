package cleaning

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEngine(t *testing.T, e *Engine, content string) (string, *Result) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "input.csv")
	out := filepath.Join(dir, "output.csv")
	require.NoError(t, os.WriteFile(in, []byte(content), 0644))

	res, err := e.Run(context.Background(), in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(data), res
}

func TestEngineRun(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
		records  int64
	}{
		{
			name:     "placeholders become sentinel",
			content:  "A,B,-,--,  ,\"quoted\"\n",
			expected: "A,B,0,0,0,quoted\n",
			records:  1,
		},
		{
			name:     "delimiters only",
			content:  ",,\n",
			expected: "0,0,0\n",
			records:  1,
		},
		{
			name:     "blank line between records is skipped",
			content:  "a,b\n\nc,d\n",
			expected: "a,b\nc,d\n",
			records:  2,
		},
		{
			name:     "crlf blank line is skipped",
			content:  "a,b\r\n\r\nc,d\r\n",
			expected: "a,b\nc,d\n",
			records:  2,
		},
		{
			name:     "header only file",
			content:  "Date,\"Temp (C)\",Humidity\n",
			expected: "Date,Temp (C),Humidity\n",
			records:  1,
		},
		{
			name:     "crlf endings normalized to lf",
			content:  "a,-\r\nb,--\r\n",
			expected: "a,0\nb,0\n",
			records:  2,
		},
		{
			name:     "truncated final line is a complete record",
			content:  "a,b\nc,-",
			expected: "a,b\nc,0\n",
			records:  2,
		},
	}

	engines := map[string]*Engine{
		"buffered": NewStreamingEngine(Options{}),
		"mapped":   NewMappedEngine(Options{}),
	}

	for _, tt := range tests {
		for name, engine := range engines {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got, res := runEngine(t, engine, tt.content)
				assert.Equal(t, tt.expected, got)
				assert.Equal(t, tt.records, res.Records)
			})
		}
	}
}

func TestEngineEquivalence(t *testing.T) {
	// The central property of having two engines: identical output bytes.
	content := "Date,Temp,Wind,Rain\r\n" +
		"2024-03-01,23.4,-, \r\n" +
		"\r\n" +
		"2024-03-02,\"21.0\",--,0.2\n" +
		",,,\n" +
		"2024-03-03,19.8,3.1,-"

	streamed, sres := runEngine(t, NewStreamingEngine(Options{BufferSize: 4096}), content)
	mapped, mres := runEngine(t, NewMappedEngine(Options{}), content)

	assert.Equal(t, streamed, mapped)
	assert.Equal(t, sres.Lines, mres.Lines)
	assert.Equal(t, sres.Records, mres.Records)

	expected := "Date,Temp,Wind,Rain\n" +
		"2024-03-01,23.4,0,0\n" +
		"2024-03-02,21.0,0,0.2\n" +
		"0,0,0,0\n" +
		"2024-03-03,19.8,3.1,0\n"
	assert.Equal(t, expected, streamed)
}

func TestEngineFieldCountPreserved(t *testing.T) {
	content := "a,b,c\n-,--,\n,x,\n"
	got, _ := runEngine(t, NewStreamingEngine(Options{}), content)

	for _, line := range []string{"a,b,c", "0,0,0", "0,x,0"} {
		assert.Contains(t, got, line+"\n")
	}
}

func TestEngineMissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.csv")
	out := filepath.Join(dir, "output.csv")

	t.Run("buffered returns open error", func(t *testing.T) {
		_, err := NewStreamingEngine(Options{}).Run(context.Background(), in, out)
		require.Error(t, err)
		assert.True(t, IsOpenError(err))

		_, statErr := os.Stat(out)
		assert.True(t, os.IsNotExist(statErr), "no output file may be created")
	})

	t.Run("mapped returns map error", func(t *testing.T) {
		_, err := NewMappedEngine(Options{}).Run(context.Background(), in, out)
		require.Error(t, err)
		assert.True(t, IsMapError(err))

		_, statErr := os.Stat(out)
		assert.True(t, os.IsNotExist(statErr), "no output file may be created")
	})
}

func TestEngineUncreatableOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(in, []byte("a,b\n"), 0644))
	out := filepath.Join(dir, "no-such-dir", "output.csv")

	_, err := NewStreamingEngine(Options{}).Run(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, IsOpenError(err))
}

func TestEngineMappedEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(in, nil, 0644))
	out := filepath.Join(dir, "output.csv")

	_, err := NewMappedEngine(Options{}).Run(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, IsMapError(err))
}

func TestEngineStreamingEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(in, nil, 0644))
	out := filepath.Join(dir, "output.csv")

	res, err := NewStreamingEngine(Options{}).Run(context.Background(), in, out)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Lines)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}
