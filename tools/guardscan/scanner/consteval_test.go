package scanner

import (
	"go/constant"
	"go/parser"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guardkit/guardkit-go/numeral"
)

func resolveSource(t *testing.T, source string) constant.Value {
	t.Helper()
	expr, err := parser.ParseExpr(source)
	require.NoError(t, err)
	return resolveConst(expr)
}

func TestResolveConst(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"3", "3"},
		{"-3", "-3"},
		{"+7", "7"},
		{"(2 + 2)", "4"},
		{"2 * 3", "6"},
		{"7 - 9", "-2"},
		{"-(1 + 2) * 3", "-9"},
	}
	for _, tc := range cases {
		value := resolveSource(t, tc.source)
		require.NotNil(t, value, "source %q", tc.source)
		require.Equal(t, tc.want, value.ExactString(), "source %q", tc.source)
	}
}

func TestResolveConstUndecidable(t *testing.T) {
	for _, source := range []string{
		"x",
		"f()",
		`"three"`,
		"a / b",
		"len(xs)",
	} {
		require.Nil(t, resolveSource(t, source), "source %q", source)
	}
}

func TestStaticVerdict(t *testing.T) {
	three := constant.MakeInt64(3)
	five := constant.MakeInt64(5)

	cases := []struct {
		rel      numeral.Relation
		lhs, rhs constant.Value
		want     Verdict
	}{
		{numeral.Less, three, five, VerdictSatisfied},
		{numeral.Less, five, three, VerdictViolated},
		{numeral.Less, three, three, VerdictViolated},
		{numeral.LessOrEqual, three, three, VerdictSatisfied},
		{numeral.Greater, five, three, VerdictSatisfied},
		{numeral.GreaterOrEqual, three, five, VerdictViolated},
		{numeral.Equal, three, three, VerdictSatisfied},
		{numeral.Equal, three, five, VerdictViolated},
		{numeral.Less, nil, five, VerdictUndecidable},
		{numeral.Less, three, nil, VerdictUndecidable},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, staticVerdict(tc.rel, tc.lhs, tc.rhs), "%s", tc.rel)
	}
}

func TestVerdictString(t *testing.T) {
	require.Equal(t, "satisfied", VerdictSatisfied.String())
	require.Equal(t, "violated", VerdictViolated.String())
	require.Equal(t, "undecidable", VerdictUndecidable.String())
}
