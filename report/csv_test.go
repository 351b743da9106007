package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsiemens/ratio/ratio"
)

func TestParseEntriesCsv(t *testing.T) {
	in := `label,value
# comment
a, 1/2
b,3
a,2/-4
`
	entries, err := ParseEntriesCsv[int](strings.NewReader(in), "in.csv")
	require.NoError(t, err)
	require.Equal(t, []Entry[int]{
		{"a", ratio.Make(1, 2, false)},
		{"b", ratio.Make(3, 1, false)},
		{"a", ratio.Make(2, -4, false)},
	}, entries)
}

func TestParseEntriesCsvNoHeader(t *testing.T) {
	entries, err := ParseEntriesCsv[uint8](strings.NewReader("x,1/2\n"), "in.csv")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestParseEntriesCsvErrors(t *testing.T) {
	_, err := ParseEntriesCsv[int8](strings.NewReader("a,300/1\n"), "in.csv")
	require.ErrorIs(t, err, ratio.ErrRange)
	require.Contains(t, err.Error(), "in.csv: line 1")

	_, err = ParseEntriesCsv[int](strings.NewReader("a,1/2,3\n"), "in.csv")
	require.Error(t, err)

	_, err = ParseEntriesCsv[int](strings.NewReader("a,half\n"), "in.csv")
	require.ErrorIs(t, err, ratio.ErrSyntax)
}

func TestParseEntriesCsvErrorLine(t *testing.T) {
	in := `label,value
# comment
"multi
line",1/2
b,1/x
`
	_, err := ParseEntriesCsv[int](strings.NewReader(in), "in.csv")
	require.ErrorIs(t, err, ratio.ErrSyntax)
	require.Contains(t, err.Error(), "in.csv: line 5:")
}
