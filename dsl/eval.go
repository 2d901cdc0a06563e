package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
	"github.com/gerardgarvan/qKangaroo-sub000/prover"
	"github.com/gerardgarvan/qKangaroo-sub000/qseries"
	"github.com/gerardgarvan/qKangaroo-sub000/series"
	"github.com/gerardgarvan/qKangaroo-sub000/telescope"
)

// ErrUnknownFunction is returned for a call to an undefined name.
var ErrUnknownFunction = errors.New("unknown function")

// Family is a hypergeometric series parameterized by the free index n.
// Concrete series are families whose powers never reference n.
type Family struct {
	Upper    []MonoNode
	Lower    []MonoNode
	Argument MonoNode
}

// At instantiates the family at a concrete n.
func (f Family) At(n int64) qseries.Hypergeometric {
	mono := func(m MonoNode) qseries.Monomial {
		return qseries.QPower(m.NCoeff*n + m.Const)
	}
	h := qseries.Hypergeometric{Argument: mono(f.Argument)}
	for _, u := range f.Upper {
		h.Upper = append(h.Upper, mono(u))
	}
	for _, l := range f.Lower {
		h.Lower = append(h.Lower, mono(l))
	}
	return h
}

// Dependence reads the n-dependence straight off the family's templates,
// which is exact where the detection heuristic on values is approximate.
func (f Family) Dependence() telescope.Dependence {
	var dep telescope.Dependence
	for i, u := range f.Upper {
		if u.NCoeff != 0 {
			dep.UpperIndices = append(dep.UpperIndices, i)
		}
	}
	dep.InArgument = f.Argument.NCoeff != 0
	return dep
}

// pochRatio is the value of pochratio(a, b): the scalar family
// (a;q)_n / (b;q)_n used as a right-hand side in prove().
type pochRatio struct {
	num MonoNode
	den MonoNode
}

// Evaluator dispatches parsed expressions to the algorithm packages.
type Evaluator struct {
	opts telescope.Options
}

// NewEvaluator returns an evaluator with the given search bounds.
func NewEvaluator(opts telescope.Options) *Evaluator {
	return &Evaluator{opts: opts}
}

// Run parses and evaluates one expression, rendering the result as text.
func (e *Evaluator) Run(input string) (string, error) {
	node, err := NewParser(input).Parse()
	if err != nil {
		return "", err
	}
	v, err := e.eval(node)
	if err != nil {
		return "", err
	}
	return render(v), nil
}

func render(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case number.Rat:
		return val.String()
	case *series.FPS:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (e *Evaluator) eval(node Node) (any, error) {
	switch n := node.(type) {
	case NumberNode:
		return number.New(n.Num, n.Den), nil
	case MonoNode:
		return n, nil
	case ListNode:
		items := make([]any, 0, len(n.Items))
		for _, item := range n.Items {
			v, err := e.eval(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case IdentNode:
		return n, nil
	case CallNode:
		return e.call(n)
	default:
		return nil, fmt.Errorf("unhandled node %T", node)
	}
}

func (e *Evaluator) call(c CallNode) (any, error) {
	args := make([]any, 0, len(c.Args))
	for _, a := range c.Args {
		v, err := e.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch c.Name {
	case "phi":
		return e.phi(args)
	case "gosper":
		return e.gosper(args)
	case "zeilberger":
		return e.zeilberger(args)
	case "certverify":
		return e.certverify(args)
	case "petkovsek":
		return e.petkovsek(args)
	case "pochratio":
		return e.pochratio(args)
	case "prove":
		return e.prove(args)
	case "sum":
		return e.sum(args)
	case "aqprod":
		return e.aqprod(args)
	case "qbin":
		return e.qbin(args)
	case "etaq":
		return e.etaq(args)
	case "jacprod":
		return e.jacprod(args)
	case "partitions":
		return e.partitions(args)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, c.Name)
	}
}

func arity(name string, args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s expects %d arguments, got %d", name, want, len(args))
	}
	return nil
}

func asRat(name string, v any) (number.Rat, error) {
	r, ok := v.(number.Rat)
	if !ok {
		return number.Rat{}, fmt.Errorf("%s: expected a number, got %T", name, v)
	}
	return r, nil
}

func asInt(name string, v any) (int64, error) {
	r, err := asRat(name, v)
	if err != nil {
		return 0, err
	}
	if !r.Denom().IsInt64() || r.Denom().Int64() != 1 || !r.Num().IsInt64() {
		return 0, fmt.Errorf("%s: expected an integer, got %s", name, r)
	}
	return r.Num().Int64(), nil
}

func asMono(name string, v any) (MonoNode, error) {
	m, ok := v.(MonoNode)
	if !ok {
		return MonoNode{}, fmt.Errorf("%s: expected a q-power, got %T", name, v)
	}
	return m, nil
}

func asMonoList(name string, v any) ([]MonoNode, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list, got %T", name, v)
	}
	out := make([]MonoNode, 0, len(list))
	for _, item := range list {
		m, err := asMono(name, item)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func asFamily(name string, v any) (Family, error) {
	f, ok := v.(Family)
	if !ok {
		return Family{}, fmt.Errorf("%s: expected a phi(...) series, got %T", name, v)
	}
	return f, nil
}

func (e *Evaluator) phi(args []any) (any, error) {
	if err := arity("phi", args, 3); err != nil {
		return nil, err
	}
	upper, err := asMonoList("phi upper", args[0])
	if err != nil {
		return nil, err
	}
	lower, err := asMonoList("phi lower", args[1])
	if err != nil {
		return nil, err
	}
	arg, err := asMono("phi argument", args[2])
	if err != nil {
		return nil, err
	}
	return Family{Upper: upper, Lower: lower, Argument: arg}, nil
}

func (e *Evaluator) gosper(args []any) (any, error) {
	if err := arity("gosper", args, 2); err != nil {
		return nil, err
	}
	f, err := asFamily("gosper", args[0])
	if err != nil {
		return nil, err
	}
	dep := f.Dependence()
	if len(dep.UpperIndices) > 0 || dep.InArgument {
		return nil, errors.New("gosper: series must not reference n; instantiate it first")
	}
	q, err := asRat("gosper", args[1])
	if err != nil {
		return nil, err
	}
	res := telescope.QGosper(f.At(0), q)
	if !res.Summable {
		return "not summable", nil
	}
	return fmt.Sprintf("summable, certificate %s", res.Certificate), nil
}

func (e *Evaluator) zeilberger(args []any) (any, error) {
	if err := arity("zeilberger", args, 3); err != nil {
		return nil, err
	}
	f, err := asFamily("zeilberger", args[0])
	if err != nil {
		return nil, err
	}
	n, err := asInt("zeilberger", args[1])
	if err != nil {
		return nil, err
	}
	q, err := asRat("zeilberger", args[2])
	if err != nil {
		return nil, err
	}
	zr := telescope.QZeilberger(f.At(n), n, q, f.Dependence(), e.opts)
	if zr == nil {
		return fmt.Sprintf("no recurrence up to order %d", e.opts.MaxOrder), nil
	}
	parts := make([]string, len(zr.Coefficients))
	for j, c := range zr.Coefficients {
		parts[j] = fmt.Sprintf("(%s)*S(n+%d)", c, j)
	}
	return fmt.Sprintf("order %d: %s = 0", zr.Order, strings.Join(parts, " + ")), nil
}

func (e *Evaluator) certverify(args []any) (any, error) {
	if err := arity("certverify", args, 3); err != nil {
		return nil, err
	}
	f, err := asFamily("certverify", args[0])
	if err != nil {
		return nil, err
	}
	n, err := asInt("certverify", args[1])
	if err != nil {
		return nil, err
	}
	q, err := asRat("certverify", args[2])
	if err != nil {
		return nil, err
	}
	dep := f.Dependence()
	zr := telescope.QZeilberger(f.At(n), n, q, dep, e.opts)
	if zr == nil {
		return fmt.Sprintf("no recurrence up to order %d", e.opts.MaxOrder), nil
	}
	ok := telescope.VerifyCertificate(f.At(n), q, zr.Coefficients, zr.Certificate, dep, e.opts.MaxK)
	return ok, nil
}

func (e *Evaluator) petkovsek(args []any) (any, error) {
	if err := arity("petkovsek", args, 2); err != nil {
		return nil, err
	}
	list, ok := args[0].([]any)
	if !ok {
		return nil, fmt.Errorf("petkovsek: expected a coefficient list, got %T", args[0])
	}
	coeffs := make([]number.Rat, 0, len(list))
	for _, item := range list {
		c, err := asRat("petkovsek", item)
		if err != nil {
			return nil, err
		}
		coeffs = append(coeffs, c)
	}
	q, err := asRat("petkovsek", args[1])
	if err != nil {
		return nil, err
	}
	sols := telescope.QPetkovsek(coeffs, q, e.opts)
	if len(sols) == 0 {
		return "no q-hypergeometric solutions", nil
	}
	parts := make([]string, len(sols))
	for i, s := range sols {
		parts[i] = fmt.Sprintf("ratio %s", s.Ratio)
	}
	return strings.Join(parts, "; "), nil
}

func (e *Evaluator) pochratio(args []any) (any, error) {
	if err := arity("pochratio", args, 2); err != nil {
		return nil, err
	}
	num, err := asMono("pochratio", args[0])
	if err != nil {
		return nil, err
	}
	den, err := asMono("pochratio", args[1])
	if err != nil {
		return nil, err
	}
	if num.NCoeff != 0 || den.NCoeff != 0 {
		return nil, errors.New("pochratio: arguments must be concrete q-powers")
	}
	return pochRatio{num: num, den: den}, nil
}

func (e *Evaluator) prove(args []any) (any, error) {
	if err := arity("prove", args, 4); err != nil {
		return nil, err
	}
	f, err := asFamily("prove", args[0])
	if err != nil {
		return nil, err
	}
	pr, ok := args[1].(pochRatio)
	if !ok {
		return nil, fmt.Errorf("prove: expected pochratio(...), got %T", args[1])
	}
	q, err := asRat("prove", args[2])
	if err != nil {
		return nil, err
	}
	nTest, err := asInt("prove", args[3])
	if err != nil {
		return nil, err
	}

	rhs := func(n int64) number.Rat {
		return pochAt(q.Pow(pr.num.Const), q, n).Div(pochAt(q.Pow(pr.den.Const), q, n))
	}
	res := prover.New(e.opts).Prove(f.At, rhs, q, nTest)
	if !res.Proved {
		return fmt.Sprintf("not proved: %s", res.Reason), nil
	}
	return fmt.Sprintf("proved: recurrence order %d, %d initial conditions checked",
		res.Order, res.InitialConditionsChecked), nil
}

// pochAt evaluates (a;q)_n at concrete q as a scalar product.
func pochAt(a, q number.Rat, n int64) number.Rat {
	result := number.One()
	for k := int64(0); k < n; k++ {
		result = result.Mul(number.One().Sub(a.Mul(q.Pow(k))))
	}
	return result
}

func (e *Evaluator) sum(args []any) (any, error) {
	if err := arity("sum", args, 3); err != nil {
		return nil, err
	}
	f, err := asFamily("sum", args[0])
	if err != nil {
		return nil, err
	}
	n, err := asInt("sum", args[1])
	if err != nil {
		return nil, err
	}
	q, err := asRat("sum", args[2])
	if err != nil {
		return nil, err
	}
	return telescope.Sum(f.At(n), q, e.opts), nil
}

func (e *Evaluator) aqprod(args []any) (any, error) {
	if err := arity("aqprod", args, 3); err != nil {
		return nil, err
	}
	m, err := asMono("aqprod", args[0])
	if err != nil {
		return nil, err
	}
	if m.NCoeff != 0 {
		return nil, errors.New("aqprod: argument must be a concrete q-power")
	}
	order, err := asInt("aqprod", args[2])
	if err != nil {
		return nil, err
	}

	if id, ok := args[1].(IdentNode); ok && id.Name == "inf" {
		return qseries.AQProd(qseries.QPower(m.Const), qseries.Infinite(), order), nil
	}
	n, err := asInt("aqprod", args[1])
	if err != nil {
		return nil, err
	}
	return qseries.AQProd(qseries.QPower(m.Const), qseries.Finite(n), order), nil
}

func (e *Evaluator) qbin(args []any) (any, error) {
	if err := arity("qbin", args, 3); err != nil {
		return nil, err
	}
	n, err := asInt("qbin", args[0])
	if err != nil {
		return nil, err
	}
	k, err := asInt("qbin", args[1])
	if err != nil {
		return nil, err
	}
	order, err := asInt("qbin", args[2])
	if err != nil {
		return nil, err
	}
	return qseries.QBin(n, k, order), nil
}

func (e *Evaluator) etaq(args []any) (any, error) {
	if err := arity("etaq", args, 3); err != nil {
		return nil, err
	}
	b, err := asInt("etaq", args[0])
	if err != nil {
		return nil, err
	}
	t, err := asInt("etaq", args[1])
	if err != nil {
		return nil, err
	}
	order, err := asInt("etaq", args[2])
	if err != nil {
		return nil, err
	}
	return qseries.EtaQ(b, t, order), nil
}

func (e *Evaluator) jacprod(args []any) (any, error) {
	if err := arity("jacprod", args, 3); err != nil {
		return nil, err
	}
	a, err := asInt("jacprod", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt("jacprod", args[1])
	if err != nil {
		return nil, err
	}
	order, err := asInt("jacprod", args[2])
	if err != nil {
		return nil, err
	}
	return qseries.JacProd(a, b, order), nil
}

func (e *Evaluator) partitions(args []any) (any, error) {
	if err := arity("partitions", args, 1); err != nil {
		return nil, err
	}
	n, err := asInt("partitions", args[0])
	if err != nil {
		return nil, err
	}
	return qseries.PartitionCount(n).String(), nil
}
