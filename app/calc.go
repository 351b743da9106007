package app

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/tsiemens/ratio/ratio"
	"github.com/tsiemens/ratio/report"
)

var (
	ErrUnknownElemType = errors.New("unknown element type")
	ErrUnknownOp       = errors.New("unknown operator")
)

// ElemTypes are the element type names accepted in Options.ElemType.
var ElemTypes = []string{
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
}

// calculator runs the app's operations for one element type, so callers
// don't need to know T.
type calculator interface {
	describe(values []string, h report.PrintHelper) *report.RenderTable
	eval(args []string) (string, error)
	sum(readers []DescribedReader, h report.PrintHelper) (*SumRenderResult, error)
}

type calc[T constraints.Integer] struct{}

func newCalculator(elemType string) (calculator, error) {
	switch elemType {
	case "int":
		return calc[int]{}, nil
	case "int8":
		return calc[int8]{}, nil
	case "int16":
		return calc[int16]{}, nil
	case "int32":
		return calc[int32]{}, nil
	case "int64":
		return calc[int64]{}, nil
	case "uint":
		return calc[uint]{}, nil
	case "uint8":
		return calc[uint8]{}, nil
	case "uint16":
		return calc[uint16]{}, nil
	case "uint32":
		return calc[uint32]{}, nil
	case "uint64":
		return calc[uint64]{}, nil
	}
	return nil, fmt.Errorf("%q: %w (expected one of %v)", elemType, ErrUnknownElemType, ElemTypes)
}

// catchDivByZero turns the runtime panic of an integer division by zero into
// an error. Any other panic is re-raised.
func catchDivByZero(err *error) {
	if r := recover(); r != nil {
		if rerr, ok := r.(runtime.Error); ok && strings.Contains(rerr.Error(), "integer divide by zero") {
			*err = fmt.Errorf("undefined result: %w", rerr)
			return
		}
		panic(r)
	}
}

func (calc[T]) describe(values []string, h report.PrintHelper) *report.RenderTable {
	rs := make([]ratio.Rational[T], 0, len(values))
	var errs []error
	for _, v := range values {
		r, err := ratio.Parse[T](v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rs = append(rs, r)
	}
	table := report.RenderDescribeTable(rs, h)
	table.Errors = errs
	return table
}

// eval evaluates "op x" for a unary op or "x op y" for a binary one.
func (c calc[T]) eval(args []string) (res string, err error) {
	defer catchDivByZero(&err)

	switch len(args) {
	case 2:
		x, err := ratio.Parse[T](args[1])
		if err != nil {
			return "", err
		}
		return c.evalUnary(args[0], x)
	case 3:
		x, err := ratio.Parse[T](args[0])
		if err != nil {
			return "", err
		}
		y, err := ratio.Parse[T](args[2])
		if err != nil {
			return "", err
		}
		return c.evalBinary(x, args[1], y)
	}
	return "", fmt.Errorf("expected \"OP X\" or \"X OP Y\", got %d arguments", len(args))
}

func (calc[T]) evalUnary(op string, x ratio.Rational[T]) (string, error) {
	switch op {
	case "neg":
		r, err := ratio.Neg(x)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	case "inv":
		return ratio.Inverse(x).String(), nil
	case "abs":
		return ratio.Absolute(x).String(), nil
	case "reduce":
		return ratio.Reduce(x).String(), nil
	case "float":
		return strconv.FormatFloat(x.Float64(), 'g', -1, 64), nil
	case "floor":
		return fmt.Sprint(x.Floor()), nil
	case "ceil":
		return fmt.Sprint(x.Ceil()), nil
	case "trunc":
		return fmt.Sprint(x.Truncate()), nil
	case "round":
		return fmt.Sprint(x.Round()), nil
	}
	return "", fmt.Errorf("%q: %w", op, ErrUnknownOp)
}

func (calc[T]) evalBinary(x ratio.Rational[T], op string, y ratio.Rational[T]) (string, error) {
	switch op {
	case "+":
		return x.Add(y).String(), nil
	case "-":
		r, err := x.Sub(y)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	case "*", "x":
		return x.Mul(y).String(), nil
	case "/":
		return x.Div(y).String(), nil
	case "==":
		return strconv.FormatBool(x.Equal(y)), nil
	case "!=":
		return strconv.FormatBool(x.NotEqual(y)), nil
	case "<":
		return strconv.FormatBool(x.Less(y)), nil
	case "<=":
		return strconv.FormatBool(x.LessEqual(y)), nil
	case ">":
		return strconv.FormatBool(x.Greater(y)), nil
	case ">=":
		return strconv.FormatBool(x.GreaterEqual(y)), nil
	case "cmp":
		return strconv.Itoa(x.Cmp(y)), nil
	}
	return "", fmt.Errorf("%q: %w", op, ErrUnknownOp)
}

type SumRenderResult struct {
	SourceTables map[string]*report.RenderTable
	TotalsTable  *report.RenderTable
}

func (calc[T]) sum(readers []DescribedReader, h report.PrintHelper) (res *SumRenderResult, err error) {
	defer catchDivByZero(&err)

	bySource := make(map[string]*report.CumulativeTotals[T])
	for _, r := range readers {
		entries, err := report.ParseEntriesCsv[T](r.Reader, r.Desc)
		if err != nil {
			return nil, err
		}
		bySource[r.Desc] = report.CalcCumulativeTotals(entries)
	}

	res = &SumRenderResult{SourceTables: make(map[string]*report.RenderTable)}
	for desc, totals := range bySource {
		res.SourceTables[desc] = report.RenderTotalsTable(totals, h)
	}
	res.TotalsTable = report.RenderTotalsTable(report.CalcAggregateTotals(bySource), h)
	return res, nil
}
