package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type ErrorPrinter interface {
	Ln(v ...interface{})
	F(format string, v ...interface{})
}

type WriterErrorPrinter struct {
	W io.Writer
}

func (p WriterErrorPrinter) Ln(v ...interface{}) {
	fmt.Fprintln(p.W, v...)
}

func (p WriterErrorPrinter) F(format string, v ...interface{}) {
	fmt.Fprintf(p.W, format, v...)
}

func NewStderrErrorPrinter() WriterErrorPrinter {
	return WriterErrorPrinter{W: os.Stderr}
}

// CollectingErrorPrinter keeps everything printed to it, one entry per call.
type CollectingErrorPrinter struct {
	Msgs []string
}

func (p *CollectingErrorPrinter) Ln(v ...interface{}) {
	p.Msgs = append(p.Msgs, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (p *CollectingErrorPrinter) F(format string, v ...interface{}) {
	p.Msgs = append(p.Msgs, fmt.Sprintf(format, v...))
}

func (p *CollectingErrorPrinter) String() string {
	return strings.Join(p.Msgs, "\n")
}
