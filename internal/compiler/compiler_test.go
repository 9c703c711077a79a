package compiler_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/go-tac/internal/compiler"
)

// goldenScenarios are the end-to-end fixtures: literal source in,
// literal bit-exact TAC text out, counters starting fresh for each.
var goldenScenarios = []struct {
	name   string
	source string
	want   string
}{
	{
		name:   "S1_empty_block",
		source: `{}`,
		want:   "L1:L2:",
	},
	{
		name:   "S2_unused_declaration",
		source: `{int i;}`,
		want:   "L1:L2:",
	},
	{
		name:   "S3_single_assignment",
		source: `{int i; i = 10;}`,
		want:   "L1:\ti = 10\nL2:",
	},
	{
		name:   "S4_relation_and_arithmetic",
		source: `{int i; int j; bool a; i = i + 10; j = 11; a = i == j;}`,
		want: "L1:\ti = i + 10\n" +
			"L3:\tj = 11\n" +
			"L4:\tiffalse i == j goto L5\n" +
			"\tt1 = true\n" +
			"\tgoto L6\n" +
			"L5:\tt1 = false\n" +
			"L6:\ta = t1\n" +
			"L2:",
	},
	{
		name:   "S5_while_loop",
		source: `{int i; int j; j = 12; while (i > j) i = i + 1;}`,
		want: "L1:\tj = 12\n" +
			"L3:\tiffalse i > j goto L2\n" +
			"L4:\ti = i + 1\n" +
			"\tgoto L3\n" +
			"L2:",
	},
	{
		name:   "S6_break_in_while_true",
		source: `{ while (true) { break; } }`,
		want: "L1:L3:\tgoto L2\n" +
			"\tgoto L1\n" +
			"L2:",
	},
	{
		name:   "S7_array_assignment",
		source: `{int i;int[20] arr; i = 10; arr[i] = 10;}`,
		want: "L1:\ti = 10\n" +
			"L3:\tt1 = i * 4\n" +
			"\tarr [ t1 ] = 10\n" +
			"L2:",
	},
}

func TestGoldenScenarios(t *testing.T) {
	for _, sc := range goldenScenarios {
		t.Run(sc.name, func(t *testing.T) {
			var out strings.Builder
			if err := compiler.Compile(strings.NewReader(sc.source), &out); err != nil {
				t.Fatalf("Compile(%q) error: %v", sc.source, err)
			}
			if diff := cmp.Diff(sc.want, out.String()); diff != "" {
				t.Errorf("Compile(%q) mismatch (-want +got):\n%s", sc.source, diff)
			}
		})
	}
}

func TestCompileDeterministic(t *testing.T) {
	src := `{int i; int j; j = 12; while (i > j) i = i + 1;}`

	var a, b strings.Builder
	if err := compiler.Compile(strings.NewReader(src), &a); err != nil {
		t.Fatalf("first Compile error: %v", err)
	}
	if err := compiler.Compile(strings.NewReader(src), &b); err != nil {
		t.Fatalf("second Compile error: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("repeated compiles of the same source diverged:\n%q\nvs\n%q", a.String(), b.String())
	}
}

func TestCompileUndeclaredIdentifier(t *testing.T) {
	var out strings.Builder
	err := compiler.Compile(strings.NewReader(`{i = 10;}`), &out)
	if err == nil {
		t.Fatalf("expected an error for undeclared identifier, got none")
	}
}

func TestCompileTypeErrorOnMismatchedRelation(t *testing.T) {
	var out strings.Builder
	err := compiler.Compile(strings.NewReader(`{int i; bool b; b = i == true;}`), &out)
	if err == nil {
		t.Fatalf("expected a type error comparing int to bool, got none")
	}
}

func TestCompileSyntaxErrorOnTrailingGarbage(t *testing.T) {
	var out strings.Builder
	err := compiler.Compile(strings.NewReader(`{} garbage`), &out)
	if err == nil {
		t.Fatalf("expected a syntax error for trailing tokens after the program, got none")
	}
}
