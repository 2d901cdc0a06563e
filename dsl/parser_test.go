package dsl

import "testing"

func parseOne(t *testing.T, input string) Node {
	t.Helper()
	node, err := NewParser(input).Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return node
}

func TestParseQPowerForms(t *testing.T) {
	cases := []struct {
		input string
		want  MonoNode
	}{
		{"q", MonoNode{Const: 1}},
		{"q^5", MonoNode{Const: 5}},
		{"q^-3", MonoNode{Const: -3}},
		{"q^n", MonoNode{NCoeff: 1}},
		{"q^-n", MonoNode{NCoeff: -1}},
		{"q^(n+1)", MonoNode{NCoeff: 1, Const: 1}},
		{"q^(-n+2)", MonoNode{NCoeff: -1, Const: 2}},
		{"q^(n-1)", MonoNode{NCoeff: 1, Const: -1}},
	}
	for _, tc := range cases {
		node := parseOne(t, tc.input)
		mono, ok := node.(MonoNode)
		if !ok {
			t.Fatalf("%q: got %T, want MonoNode", tc.input, node)
		}
		if mono != tc.want {
			t.Fatalf("%q: got %+v, want %+v", tc.input, mono, tc.want)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	node := parseOne(t, "-5/12")
	num, ok := node.(NumberNode)
	if !ok {
		t.Fatalf("got %T, want NumberNode", node)
	}
	if num.Num != -5 || num.Den != 12 {
		t.Fatalf("got %d/%d, want -5/12", num.Num, num.Den)
	}
}

func TestParseZeroDenominator(t *testing.T) {
	if _, err := NewParser("1/0").Parse(); err == nil {
		t.Fatal("expected error for zero denominator")
	}
}

func TestParseCallWithList(t *testing.T) {
	node := parseOne(t, "phi([q^-n, q^2], [q^3], q^(n+1))")
	call, ok := node.(CallNode)
	if !ok {
		t.Fatalf("got %T, want CallNode", node)
	}
	if call.Name != "phi" || len(call.Args) != 3 {
		t.Fatalf("got name %q with %d args", call.Name, len(call.Args))
	}
	upper, ok := call.Args[0].(ListNode)
	if !ok || len(upper.Items) != 2 {
		t.Fatalf("first arg = %+v, want 2-item list", call.Args[0])
	}
	if m := upper.Items[0].(MonoNode); m.NCoeff != -1 || m.Const != 0 {
		t.Fatalf("upper[0] = %+v, want q^-n", m)
	}
	if arg := call.Args[2].(MonoNode); arg.NCoeff != 1 || arg.Const != 1 {
		t.Fatalf("argument = %+v, want q^(n+1)", arg)
	}
}

func TestParseNestedCalls(t *testing.T) {
	node := parseOne(t, "zeilberger(phi([q^-n], [q^3], q), 5, 1/3)")
	call := node.(CallNode)
	if call.Name != "zeilberger" {
		t.Fatalf("name = %q", call.Name)
	}
	if _, ok := call.Args[0].(CallNode); !ok {
		t.Fatalf("first arg = %T, want nested CallNode", call.Args[0])
	}
}

func TestParseRejectsTrailingInput(t *testing.T) {
	if _, err := NewParser("partitions(5) extra").Parse(); err == nil {
		t.Fatal("expected error for trailing input")
	}
}

func TestParseBareIdent(t *testing.T) {
	node := parseOne(t, "inf")
	id, ok := node.(IdentNode)
	if !ok || id.Name != "inf" {
		t.Fatalf("got %+v, want inf ident", node)
	}
}
