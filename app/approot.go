package app

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tsiemens/ratio/config"
	"github.com/tsiemens/ratio/log"
	"github.com/tsiemens/ratio/report"
)

// Version is of the format 0.YY.MM[.i], or 0.year.month.optional_minor_increment
var RatioVersion = "0.26.10"

type DescribedReader struct {
	Desc   string
	Reader io.Reader
}

type Options struct {
	ElemType         string
	Places           int
	RenderFullValues bool
	Humanize         bool
}

func NewOptions() Options {
	return Options{
		ElemType:         config.DefaultElemType,
		Places:           config.DefaultPlaces,
		RenderFullValues: false,
		Humanize:         false,
	}
}

func OptionsFromConfig(c *config.Custom) Options {
	return Options{
		ElemType:         c.Display.ElemType,
		Places:           c.Display.Places,
		RenderFullValues: c.Display.Full,
		Humanize:         c.Display.Humanize,
	}
}

func (o Options) printHelper() report.PrintHelper {
	return report.PrintHelper{
		PrintAllDecimals: o.RenderFullValues,
		Places:           int32(o.Places),
		Humanize:         o.Humanize,
	}
}

// Returns an OK flag. Used to signal what exit code to use.
// Values that fail to parse are listed under the table and make the result
// not OK.
func RunDescribe(
	writer io.Writer,
	values []string,
	options Options,
	errPrinter log.ErrorPrinter) bool {

	c, err := newCalculator(options.ElemType)
	if err != nil {
		errPrinter.Ln("Error:", err)
		return false
	}
	table := c.describe(values, options.printHelper())
	report.PrintRenderTable("", table, writer)
	return len(table.Errors) == 0
}

// Returns an OK flag. Used to signal what exit code to use.
func RunEval(
	writer io.Writer,
	args []string,
	options Options,
	errPrinter log.ErrorPrinter) bool {

	c, err := newCalculator(options.ElemType)
	if err != nil {
		errPrinter.Ln("Error:", err)
		return false
	}
	res, err := c.eval(args)
	if err != nil {
		errPrinter.Ln("Error:", err)
		return false
	}
	fmt.Fprintln(writer, res)
	return true
}

func RunSumToRenderModel(
	csvFileReaders []DescribedReader,
	options Options) (*SumRenderResult, error) {

	c, err := newCalculator(options.ElemType)
	if err != nil {
		return nil, err
	}
	return c.sum(csvFileReaders, options.printHelper())
}

func WriteSumResult(renderRes *SumRenderResult, writer io.Writer) {
	srcs := make([]string, 0, len(renderRes.SourceTables))
	for k := range renderRes.SourceTables {
		srcs = append(srcs, k)
	}
	sort.Strings(srcs)

	var srcsWithNotes []string
	// A single source's table is the same as the aggregate one.
	if len(srcs) > 1 {
		for _, src := range srcs {
			renderTable := renderRes.SourceTables[src]
			report.PrintRenderTable(fmt.Sprintf("Totals for %s", src), renderTable, writer)
			fmt.Fprintln(writer, "")
			if len(renderTable.Notes) > 0 {
				srcsWithNotes = append(srcsWithNotes, src)
			}
		}
	}

	report.PrintRenderTable("Aggregate Totals", renderRes.TotalsTable, writer)

	if len(srcsWithNotes) > 0 {
		fmt.Fprintln(writer, "\n[!] Some entries were skipped in:", strings.Join(srcsWithNotes, ", "))
	}
}

// Returns an OK flag. Used to signal what exit code to use.
// All errors get printed to the errPrinter.
func RunSum(
	writer io.Writer,
	csvFileReaders []DescribedReader,
	options Options,
	errPrinter log.ErrorPrinter) bool {

	if len(csvFileReaders) == 0 {
		errPrinter.Ln("Error: no input files")
		return false
	}
	renderRes, err := RunSumToRenderModel(csvFileReaders, options)
	if err != nil {
		errPrinter.Ln("Error:", err)
		return false
	}
	WriteSumResult(renderRes, writer)
	return true
}
