package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gerardgarvan/qKangaroo-sub000/dsl"
	"github.com/gerardgarvan/qKangaroo-sub000/identity"
	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/prover"
	"github.com/gerardgarvan/qKangaroo-sub000/telescope"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	upperFlag := fs.String("upper", "", "upper parameters, e.g. '[q^-n, q^2]'")
	lowerFlag := fs.String("lower", "", "lower parameters, e.g. '[q^3]'")
	argFlag := fs.String("arg", "", "series argument, e.g. 'q^(n+1)'")
	rhsNumFlag := fs.String("rhs-num", "", "closed form numerator base, e.g. 'q'")
	rhsDenFlag := fs.String("rhs-den", "", "closed form denominator base, e.g. 'q^3'")
	qFlag := fs.String("q", "1/2", "rational base q")
	nTest := fs.Int64("ntest", 5, "test index for deriving the recurrence")
	maxOrder := fs.Int("max-order", telescope.DefaultOptions().MaxOrder, "recurrence order search bound")
	name := fs.String("name", "", "identity name for the database record")
	dbPath := fs.String("db", "", "sqlite database to record the proof in")
	verbose := fs.Bool("verbose", false, "log prover progress")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qkangaroo prove [options]

Prove that a terminating q-hypergeometric sum equals a Pochhammer
quotient (a;q)_n / (b;q)_n, following the recurrence-plus-initial-
conditions method.

Examples:
  # q-Gauss identity
  qkangaroo prove -upper '[q^-n, q^2]' -lower '[q^3]' -arg 'q^(n+1)' \
    -rhs-num q -rhs-den q^3 -q 1/2

  # record the proof
  qkangaroo prove ... -name q-gauss -db identities.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, req := range []struct{ name, val string }{
		{"upper", *upperFlag}, {"lower", *lowerFlag}, {"arg", *argFlag},
		{"rhs-num", *rhsNumFlag}, {"rhs-den", *rhsDenFlag},
	} {
		if req.val == "" {
			fs.Usage()
			return fmt.Errorf("-%s is required", req.name)
		}
	}

	upper, err := parseMonoList(*upperFlag)
	if err != nil {
		return fmt.Errorf("parse -upper: %w", err)
	}
	lower, err := parseMonoList(*lowerFlag)
	if err != nil {
		return fmt.Errorf("parse -lower: %w", err)
	}
	arg, err := parseMono(*argFlag)
	if err != nil {
		return fmt.Errorf("parse -arg: %w", err)
	}
	rhsNum, err := parseMono(*rhsNumFlag)
	if err != nil {
		return fmt.Errorf("parse -rhs-num: %w", err)
	}
	rhsDen, err := parseMono(*rhsDenFlag)
	if err != nil {
		return fmt.Errorf("parse -rhs-den: %w", err)
	}
	if rhsNum.NCoeff != 0 || rhsDen.NCoeff != 0 {
		return fmt.Errorf("-rhs-num and -rhs-den must be concrete q-powers")
	}
	q, ok := number.Parse(*qFlag)
	if !ok {
		return fmt.Errorf("bad -q value %q", *qFlag)
	}
	if q.IsZero() {
		return fmt.Errorf("-q must be nonzero")
	}

	fam := dsl.Family{Upper: upper, Lower: lower, Argument: arg}
	rhs := func(n int64) number.Rat {
		return pochhammer(q.Pow(rhsNum.Const), q, n).Div(pochhammer(q.Pow(rhsDen.Const), q, n))
	}

	opts := telescope.DefaultOptions()
	opts.MaxOrder = *maxOrder
	p := prover.New(opts)
	if *verbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		p = p.WithLogger(log)
	}

	res := p.Prove(fam.At, rhs, q, *nTest)
	if !res.Proved {
		return fmt.Errorf("not proved: %s", res.Reason)
	}

	fmt.Printf("Proved at q = %s, n_test = %d\n", q, *nTest)
	fmt.Printf("Recurrence order: %d\n", res.Order)
	parts := make([]string, len(res.Coefficients))
	for j, c := range res.Coefficients {
		parts[j] = fmt.Sprintf("(%s)*S(n+%d)", c, j)
	}
	fmt.Printf("Recurrence: %s = 0\n", strings.Join(parts, " + "))
	fmt.Printf("Initial conditions checked: %d\n", res.InitialConditionsChecked)

	if *dbPath != "" {
		recName := *name
		if recName == "" {
			recName = fmt.Sprintf("phi(%s, %s, %s)", *upperFlag, *lowerFlag, *argFlag)
		}
		store, err := identity.Open(*dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer store.Close()
		rec, err := store.Save(recName, q, *nTest, res.Order, res.Coefficients)
		if err != nil {
			return fmt.Errorf("save identity: %w", err)
		}
		fmt.Printf("Recorded as %s\n", rec.ID)
	}
	return nil
}

// pochhammer evaluates (a;q)_n at a concrete base.
func pochhammer(a, q number.Rat, n int64) number.Rat {
	result := number.One()
	for k := int64(0); k < n; k++ {
		result = result.Mul(number.One().Sub(a.Mul(q.Pow(k))))
	}
	return result
}

func parseMono(input string) (dsl.MonoNode, error) {
	node, err := dsl.NewParser(input).Parse()
	if err != nil {
		return dsl.MonoNode{}, err
	}
	m, ok := node.(dsl.MonoNode)
	if !ok {
		return dsl.MonoNode{}, fmt.Errorf("expected a q-power, got %q", input)
	}
	return m, nil
}

func parseMonoList(input string) ([]dsl.MonoNode, error) {
	node, err := dsl.NewParser(input).Parse()
	if err != nil {
		return nil, err
	}
	list, ok := node.(dsl.ListNode)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %q", input)
	}
	out := make([]dsl.MonoNode, 0, len(list.Items))
	for _, item := range list.Items {
		m, ok := item.(dsl.MonoNode)
		if !ok {
			return nil, fmt.Errorf("expected q-powers inside %q", input)
		}
		out = append(out, m)
	}
	return out, nil
}
