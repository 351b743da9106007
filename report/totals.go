package report

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tsiemens/ratio/ratio"
)

type Entry[T constraints.Integer] struct {
	Label string
	Value ratio.Rational[T]
}

type CumulativeTotals[T constraints.Integer] struct {
	Total       ratio.Rational[T]
	Count       int
	LabelTotals map[string]ratio.Rational[T]
	LabelCounts map[string]int
	// Entries with a zero denominator, which are not summed.
	Skipped int
}

func newCumulativeTotals[T constraints.Integer]() *CumulativeTotals[T] {
	return &CumulativeTotals[T]{
		Total:       ratio.FromInt[T](0),
		LabelTotals: map[string]ratio.Rational[T]{},
		LabelCounts: map[string]int{},
	}
}

func (g *CumulativeTotals[T]) add(label string, v ratio.Rational[T]) {
	g.Total = g.Total.Add(v)
	g.Count++
	cur, ok := g.LabelTotals[label]
	if !ok {
		cur = ratio.FromInt[T](0)
	}
	g.LabelTotals[label] = cur.Add(v)
	g.LabelCounts[label]++
}

func (g *CumulativeTotals[T]) LabelTotalsKeysSorted() []string {
	labels := maps.Keys(g.LabelTotals)
	slices.Sort(labels)
	return labels
}

func CalcCumulativeTotals[T constraints.Integer](entries []Entry[T]) *CumulativeTotals[T] {
	cc := newCumulativeTotals[T]()
	for _, e := range entries {
		if e.Value.Denominator == 0 {
			cc.Skipped++
			continue
		}
		cc.add(e.Label, e.Value)
	}
	return cc
}

// CalcAggregateTotals merges several sets of totals, keyed by source, into one.
func CalcAggregateTotals[T constraints.Integer](
	totals map[string]*CumulativeTotals[T]) *CumulativeTotals[T] {

	cc := newCumulativeTotals[T]()
	for _, t := range totals {
		cc.Total = cc.Total.Add(t.Total)
		cc.Count += t.Count
		cc.Skipped += t.Skipped
		for label, total := range t.LabelTotals {
			cur, ok := cc.LabelTotals[label]
			if !ok {
				cur = ratio.FromInt[T](0)
			}
			cc.LabelTotals[label] = cur.Add(total)
			cc.LabelCounts[label] += t.LabelCounts[label]
		}
	}
	return cc
}
