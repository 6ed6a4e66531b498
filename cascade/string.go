package cascade

import (
	"fmt"
	"strings"
)

// String renders a decision table the way the derivation would be
// written out by hand: one line per case, in evaluation order, naming
// the case's index, its Kind, and the surviving terms. The ε-factor
// of each case is not printed.
func (tb *Table) String() string {
	var b strings.Builder
	mag := ""
	if tb.HasMag {
		mag = "+mag"
	}
	fmt.Fprintf(&b, "cascade d=%d n=%d%s, %d cases:\n", tb.D, tb.N, mag, len(tb.Cases))
	for i, c := range tb.Cases {
		fmt.Fprintf(&b, "  [%2d] %-9s %s\n", i, c.Kind, c.Sum.String())
	}
	return b.String()
}

// String renders a TermSum as a signed sum of subdeterminants, e.g.
// "+2*x[1,0]*det(rows=[0 2] cols=[1]) -det(rows=[0 1] cols=[0 1])".
func (s TermSum) String() string {
	var b strings.Builder
	for i, t := range s.Terms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(t.String())
	}
	return b.String()
}

func (t Term) String() string {
	sign := "+"
	c := t.Const
	if c < 0 {
		sign = "-"
		c = -c
	}
	var mult string
	switch {
	case c != 1:
		mult = fmt.Sprintf("%d*", c)
	}
	var v string
	if t.VarMult != nil {
		v = fmt.Sprintf("x[%d,%d]*", t.VarMult[0], t.VarMult[1])
	}
	return fmt.Sprintf("%s%s%s%s", sign, mult, v, t.Det.String())
}

func (s Subdeterminant) String() string {
	return fmt.Sprintf("det(rows=%v cols=%v)", s.Rows, s.Cols)
}
