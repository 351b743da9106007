package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsiemens/ratio/ratio"
	"github.com/tsiemens/ratio/util"
)

type PrintHelper struct {
	PrintAllDecimals bool
	Places           int32
	Humanize         bool
}

var displayNanEnvSetting util.Optional[string]

// NaNString is shown in place of values that are undefined for a zero
// denominator.
func NaNString() string {
	if !displayNanEnvSetting.Present() {
		displayNanEnvSetting.Set(os.Getenv("DISPLAY_NAN"))
	}
	if displayNanEnvSetting.MustGet() == "" || displayNanEnvSetting.MustGet() == "0" {
		return "-"
	}
	return "NaN"
}

func humanizeDecimalStr(val string) string {
	negative := ""
	if strings.HasPrefix(val, "-") {
		negative, val = val[:1], val[1:]
	}
	before, after, found := strings.Cut(val, ".")
	suffix := ""
	if found {
		suffix = fmt.Sprintf(".%s", after)
	}
	i, err := strconv.ParseInt(before, 10, 64)
	if err != nil {
		// Past int64; leave ungrouped.
		return negative + val
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s%d%s", negative, i, suffix)
}

func (h PrintHelper) maybeHumanize(val string) string {
	if !h.Humanize {
		return val
	}
	return humanizeDecimalStr(val)
}

func (h PrintHelper) DecStr(val decimal.Decimal) string {
	if h.PrintAllDecimals {
		return h.maybeHumanize(val.String())
	}
	return h.maybeHumanize(val.StringFixed(h.Places))
}

func IntStr[T constraints.Integer](h PrintHelper, val T) string {
	return h.maybeHumanize(fmt.Sprintf("%d", val))
}

func (h PrintHelper) FloatStr(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// DecimalOf converts r to a decimal rounded to places digits. It panics on a
// zero denominator.
func DecimalOf[T constraints.Integer](r ratio.Rational[T], places int32) decimal.Decimal {
	b := r.BigRat()
	num := decimal.NewFromBigInt(b.Num(), 0)
	den := decimal.NewFromBigInt(b.Denom(), 0)
	return num.DivRound(den, places)
}

type RenderTable struct {
	Header []string
	Rows   [][]string
	Footer []string
	Notes  []string
	Errors []error
}

func (h PrintHelper) decimalPlaces() int32 {
	return util.Tern(h.PrintAllDecimals, int32(decimal.DivisionPrecision), h.Places)
}

// RenderDescribeTable lays out each value with its reduced form and every
// approximation of it.
func RenderDescribeTable[T constraints.Integer](
	values []ratio.Rational[T], h PrintHelper) *RenderTable {

	table := &RenderTable{}
	table.Header = []string{"Value", "Reduced", "Float", "Decimal", "Floor", "Ceil", "Truncate", "Round"}

	sawZeroDenom := false
	for _, r := range values {
		if r.Denominator == 0 {
			sawZeroDenom = true
			reduced := NaNString()
			if r.Numerator != 0 {
				reduced = ratio.Reduce(r).String()
			}
			nan := NaNString()
			table.Rows = append(table.Rows, []string{
				r.String(), reduced, h.FloatStr(r.Float64()), nan, nan, nan, nan, nan,
			})
			continue
		}
		table.Rows = append(table.Rows, []string{
			r.String(),
			ratio.Reduce(r).String(),
			h.FloatStr(r.Float64()),
			h.DecStr(DecimalOf(r, h.decimalPlaces())),
			IntStr(h, r.Floor()),
			IntStr(h, r.Ceil()),
			IntStr(h, r.Truncate()),
			IntStr(h, r.Round()),
		})
	}

	if sawZeroDenom {
		table.Notes = append(table.Notes,
			fmt.Sprintf(" %s = undefined for a zero denominator", NaNString()))
	}
	return table
}

// RenderTotalsTable generates a RenderTable that will render out to this:
//
//	| Label  | Entries | Total | Float   |
//	+--------+---------+-------+---------+
//	| a      | 2       | 5/6   | 0.83333 |
//	| b      | 1       | 1/4   | 0.25    |
//	| Total  | 3       | 13/12 | 1.08333 |
func RenderTotalsTable[T constraints.Integer](
	totals *CumulativeTotals[T], h PrintHelper) *RenderTable {

	table := &RenderTable{}
	table.Header = []string{"Label", "Entries", "Total", "Float"}

	for _, label := range totals.LabelTotalsKeysSorted() {
		total := totals.LabelTotals[label]
		table.Rows = append(table.Rows, []string{
			label,
			IntStr(h, totals.LabelCounts[label]),
			total.String(),
			h.FloatStr(total.Float64()),
		})
	}
	table.Footer = []string{
		"Total", IntStr(h, totals.Count), totals.Total.String(), h.FloatStr(totals.Total.Float64()),
	}

	if totals.Skipped > 0 {
		table.Notes = append(table.Notes,
			fmt.Sprintf(" %d entries with a zero denominator were left out of the totals", totals.Skipped))
	}
	return table
}

func PrintRenderTable(title string, tableModel *RenderTable, writer io.Writer) {
	if title != "" {
		fmt.Fprintf(writer, "%s\n", title)
	}
	table := tablewriter.NewWriter(writer)
	table.SetHeader(tableModel.Header)
	table.SetBorder(false)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)
	table.AppendBulk(tableModel.Rows)
	if len(tableModel.Footer) > 0 {
		table.SetFooter(tableModel.Footer)
	}
	table.Render()

	for _, note := range tableModel.Notes {
		fmt.Fprintln(writer, note)
	}
	for _, err := range tableModel.Errors {
		fmt.Fprintf(writer, "[!] %v\n", err)
	}
}
