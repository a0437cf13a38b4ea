package output

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Text, "TEXT": Text, "json": JSON, "yml": YAML, " yaml ": YAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrinterFormats(t *testing.T) {
	v := sample{Name: "alice", Count: 2}
	text := func(w io.Writer) error {
		_, err := io.WriteString(w, "plain\n")
		return err
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, JSON).Print(v, text))
	assert.JSONEq(t, `{"name":"alice","count":2}`, buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, YAML).Print(v, text))
	assert.YAMLEq(t, "name: alice\ncount: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, Text).Print(v, text))
	assert.Equal(t, "plain\n", buf.String())
}

func TestTable(t *testing.T) {
	out := Table(SimpleTable{
		Head:  []string{"id", "name"},
		Cells: [][]string{{"1", "alice"}, {"2", "bob"}},
	})
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "name")
	assert.Less(t, strings.Index(out, "alice"), strings.Index(out, "bob"))
}
