// Command fptinfo precomputes wisdom for a bandwidth and prints stability
// statistics of the cascade blocks per order.
//
// Usage:
//
//	fptinfo [flags] [order ...]
//
// Without arguments it prints every order 0..m.
//
// Examples:
//
//	fptinfo -m 64
//	fptinfo -m 128 -threshold 1e4 0 16 128
//	fptinfo -m 128 -check
//	fptinfo -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fpt/fpt/batch"
	"github.com/cwbudde/algo-fpt/fpt/cascade"
	"github.com/cwbudde/algo-fpt/fpt/wisdom"
	"github.com/cwbudde/algo-fpt/internal/cpu"
)

var recurrences = map[string]func() wisdom.Recurrence{
	"legendre":  wisdom.AssociatedLegendre,
	"chebyshev": wisdom.Chebyshev,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fptinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	m := fs.Int("m", 64, "bandwidth M")
	recName := fs.String("rec", "legendre", "recurrence (see -list)")
	threshold := fs.Float64("threshold", wisdom.DefaultThreshold, "stability threshold for rotation norms")
	check := fs.Bool("check", false, "run adjointness and stabilization self-checks")
	workers := fs.Int("workers", 0, "concurrent transforms for -check (0 = GOMAXPROCS)")
	list := fs.Bool("list", false, "list available recurrences")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fptinfo [flags] [order ...]\n\n")
		fmt.Fprintf(stderr, "Prints cascade stability statistics for a polynomial recurrence.\n")
		fmt.Fprintf(stderr, "Without arguments, prints every order 0..m.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fptinfo -m 64\n")
		fmt.Fprintf(stderr, "  fptinfo -m 128 -threshold 1e4 0 16 128\n")
		fmt.Fprintf(stderr, "  fptinfo -m 128 -check\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	newRec, ok := recurrences[strings.ToLower(strings.TrimSpace(*recName))]
	if !ok {
		fmt.Fprintf(stderr, "error: unknown recurrence %q (use -list to see available)\n", *recName)
		return 1
	}

	w, err := wisdom.Precompute(*m, newRec(), wisdom.WithThreshold(*threshold))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	orders, err := parseOrders(fs.Args(), *m)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := printStats(stdout, w, orders); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if *check {
		if err := printChecks(stdout, w, orders, *workers); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}

func printList(out io.Writer) {
	names := make([]string, 0, len(recurrences))
	for name := range recurrences {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
}

func parseOrders(args []string, m int) ([]int, error) {
	if len(args) == 0 {
		orders := make([]int, m+1)
		for n := range orders {
			orders[n] = n
		}
		return orders, nil
	}
	orders := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid order %q", a)
		}
		if n < 0 || n > m {
			return nil, fmt.Errorf("order %d not in [0, %d]", n, m)
		}
		orders = append(orders, n)
	}
	return orders, nil
}

func printStats(out io.Writer, w *wisdom.Wisdom, orders []int) error {
	fmt.Fprintf(out, "M=%d  t=%d  N=%d  threshold=%g  cpu=%s\n\n",
		w.Bandwidth(), w.Levels(), w.Size(), w.Threshold(), cpu.DetectFeatures().Level())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := []string{"Order", "Blocks", "Unstable"}
	rule := []string{"-----", "------", "--------"}
	for tau := 1; tau < w.Levels(); tau++ {
		header = append(header, fmt.Sprintf("L%d", tau))
		rule = append(rule, "--")
	}
	header = append(header, "Max Norm")
	rule = append(rule, "--------")
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rule, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, n := range orders {
		st, err := w.Stats(n)
		if err != nil {
			return err
		}
		row := []string{strconv.Itoa(n), strconv.Itoa(st.Blocks), strconv.Itoa(st.Unstable)}
		maxNorm := 0.0
		for _, ls := range st.Levels {
			row = append(row, fmt.Sprintf("%d/%d", ls.Unstable, ls.Blocks))
			maxNorm = max(maxNorm, ls.MaxNorm)
		}
		row = append(row, fmt.Sprintf("%.3g", maxNorm))
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

// printChecks runs every order through both plans and reports the
// adjointness residual |<Fx,y> - <x,F'y>| relative to the norms involved and
// the relative distance between the stabilized and native forward results.
func printChecks(out io.Writer, w *wisdom.Wisdom, orders []int, workers int) error {
	auto, err := cascade.NewPlan(w)
	if err != nil {
		return err
	}
	native, err := cascade.NewPlan(w, cascade.WithStabilization(cascade.StabilizeNever))
	if err != nil {
		return err
	}

	size := w.Size()
	xs := make([][]complex128, len(orders))
	ys := make([][]complex128, len(orders))
	fx := make([][]complex128, len(orders))
	ay := make([][]complex128, len(orders))
	nx := make([][]complex128, len(orders))
	for i, n := range orders {
		xs[i] = probe(size+1, n, 1)
		ys[i] = probe(size+1, n, 2)
		fx[i] = append([]complex128(nil), xs[i]...)
		ay[i] = append([]complex128(nil), ys[i]...)
		nx[i] = append([]complex128(nil), xs[i]...)
	}

	var opts []batch.Option
	if workers > 0 {
		opts = append(opts, batch.WithWorkers(workers))
	}
	ctx := context.Background()
	if err := batch.Forward(ctx, auto, orders, fx, opts...); err != nil {
		return err
	}
	if err := batch.Adjoint(ctx, auto, orders, ay, opts...); err != nil {
		return err
	}
	if err := batch.Forward(ctx, native, orders, nx, opts...); err != nil {
		return err
	}

	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Order\tAdjoint Residual\tStabilized vs Native\n-----\t----------------\t--------------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, n := range orders {
		lhs, rhs := inner(fx[i], ys[i]), inner(xs[i], ay[i])
		scale := norm(fx[i])*norm(ys[i]) + norm(xs[i])*norm(ay[i])
		residual := 0.0
		if scale > 0 {
			residual = cmplx.Abs(lhs-rhs) / scale
		}
		if _, err := fmt.Fprintf(tw, "%d\t%.2e\t%.2e\n", n, residual, distance(fx[i], nx[i])); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

// probe returns a deterministic vector with entries of magnitude ≤ 1.
func probe(length, n, seed int) []complex128 {
	v := make([]complex128, length)
	for j := range v {
		phase := float64((j+1)*(n+3)*(seed+5)) * 0.7548776662466927
		v[j] = complex(math.Sin(phase), math.Cos(1.3*phase))
	}
	return v
}

func inner(a, b []complex128) complex128 {
	var sum complex128
	for i := range a {
		sum += a[i] * cmplx.Conj(b[i])
	}
	return sum
}

func norm(a []complex128) float64 {
	return math.Sqrt(real(inner(a, a)))
}

func distance(a, b []complex128) float64 {
	diff := make([]complex128, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	den := norm(b)
	if den == 0 {
		return norm(diff)
	}
	return norm(diff) / den
}
