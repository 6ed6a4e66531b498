//-----------------------------------------------------------------------------
/*

sosgen prints the decision tables the cascade package derives for each
supported predicate. It is a read-only inspection tool -- the tables
it prints are already built into the library at package-init time;
this command exists so the derivation can be reviewed without writing
a throwaway test.

Usage:

	sosgen                  print all four decision tables
	sosgen orient_2d        print one table by name

*/
//-----------------------------------------------------------------------------

package main

import (
	"fmt"
	"os"

	"github.com/robustgeom/sos/cascade"
)

var tables = map[string]*cascade.Table{
	"orient_2d": cascade.BuildTable(2, false),
	"orient_3d": cascade.BuildTable(3, false),
	"in_circle": cascade.BuildTable(2, true),
	"in_sphere": cascade.BuildTable(3, true),
}

var order = []string{"orient_2d", "orient_3d", "in_circle", "in_sphere"}

func main() {
	if len(os.Args) > 1 {
		name := os.Args[1]
		tb, ok := tables[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "sosgen: unknown predicate %q (want one of %v)\n", name, order)
			os.Exit(1)
		}
		fmt.Printf("%s:\n%s", name, tb.String())
		return
	}

	for _, name := range order {
		fmt.Printf("%s:\n%s\n", name, tables[name].String())
	}
}

//-----------------------------------------------------------------------------
