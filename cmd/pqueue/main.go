// Command pqueue builds a sorted priority queue from its arguments, applies
// removals, lookups and pops, and prints the resulting chain.
//
//	pqueue -r 16 -f 8 -p 1 4 8 15 16 23 42
//
// Negative values must follow "--" so they are not read as options.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/katalvlaran/pqlist/pqueue"
)

type options struct {
	Remove []int `short:"r" long:"remove" description:"Value to remove after inserting (repeatable)"`
	Find   []int `short:"f" long:"find" description:"Value to look up (repeatable)"`
	Pop    int   `short:"p" long:"pop" description:"Number of head values to pop before printing"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pqueue:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "pqueue"
	parser.Usage = "[OPTIONS] VALUE..."

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(out, ferr.Message)

			return nil
		}

		return errors.Wrap(err, "parse arguments")
	}
	if opts.Pop < 0 {
		return errors.Errorf("pop count must be non-negative, got %d", opts.Pop)
	}

	q := pqueue.New()
	for _, arg := range rest {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return errors.Wrapf(err, "parse value %q", arg)
		}
		q.Insert(v)
	}

	for _, v := range opts.Remove {
		fmt.Fprintf(out, "remove %d: %t\n", v, q.Remove(v))
	}
	for _, v := range opts.Find {
		state := "absent"
		if q.Find(v) != nil {
			state = "found"
		}
		fmt.Fprintf(out, "find %d: %s\n", v, state)
	}
	for i := 0; i < opts.Pop; i++ {
		v, err := q.Pop()
		if err != nil {
			return errors.Wrapf(err, "pop %d of %d", i+1, opts.Pop)
		}
		fmt.Fprintf(out, "pop: %d\n", v)
	}

	fmt.Fprintf(out, "chain: %s\n", q)
	fmt.Fprintf(out, "length: %d\n", q.Length())

	return nil
}
