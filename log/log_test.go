package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterErrorPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := WriterErrorPrinter{W: &buf}
	p.Ln("Error:", 3)
	p.F("%s/%d\n", "x", 4)
	require.Equal(t, "Error: 3\nx/4\n", buf.String())
}

func TestCollectingErrorPrinter(t *testing.T) {
	p := &CollectingErrorPrinter{}
	var ep ErrorPrinter = p
	ep.Ln("a", "b")
	ep.F("c=%d", 1)
	require.Equal(t, []string{"a b", "c=1"}, p.Msgs)
	require.Equal(t, "a b\nc=1", p.String())
}
