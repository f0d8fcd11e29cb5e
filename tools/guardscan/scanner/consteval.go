package scanner

import (
	"go/ast"
	"go/constant"
	"go/token"

	"github.com/guardkit/guardkit-go/numeral"
)

// Verdict is the static outcome for one guard site.
type Verdict int

const (
	VerdictUndecidable Verdict = iota
	VerdictSatisfied
	VerdictViolated
)

func (v Verdict) String() string {
	switch v {
	case VerdictSatisfied:
		return "satisfied"
	case VerdictViolated:
		return "violated"
	}
	return "undecidable"
}

// resolveConst digs a guard operand out to a compile-time constant when
// the expression is a numeric literal, a paren or sign wrapper, a foldable
// binary expression, or an identifier bound to a constant in the same
// file. Anything else is undecidable.
//
// When a const is declared in another file it is not resolvable here;
// such sites stay undecidable and are still checked at run time.
func resolveConst(expr ast.Expr) constant.Value {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind == token.INT || e.Kind == token.FLOAT {
			return constant.MakeFromLiteral(e.Value, e.Kind, 0)
		}
	case *ast.ParenExpr:
		return resolveConst(e.X)
	case *ast.UnaryExpr:
		if e.Op == token.SUB || e.Op == token.ADD {
			if x := resolveConst(e.X); x != nil {
				return constant.UnaryOp(e.Op, x, 0)
			}
		}
	case *ast.BinaryExpr:
		if e.Op == token.ADD || e.Op == token.SUB || e.Op == token.MUL {
			x := resolveConst(e.X)
			y := resolveConst(e.Y)
			if x != nil && y != nil {
				return constant.BinaryOp(x, e.Op, y)
			}
		}
	case *ast.Ident:
		return constFromDecl(e)
	}
	return nil
}

func constFromDecl(ident *ast.Ident) constant.Value {
	if ident.Obj == nil || ident.Obj.Kind != ast.Con || ident.Obj.Decl == nil {
		return nil
	}
	spec, ok := ident.Obj.Decl.(*ast.ValueSpec)
	if !ok {
		return nil
	}
	for i, name := range spec.Names {
		if name.Name == ident.Name && i < len(spec.Values) {
			return resolveConst(spec.Values[i])
		}
	}
	return nil
}

func resolveConstArg(args []ast.Expr, idx int) constant.Value {
	if args == nil || idx < 0 || len(args) <= idx {
		return nil
	}
	return resolveConst(args[idx])
}

// staticVerdict decides a relation between two resolved operands, reusing
// the same Relation.Holds semantics the runtime guards use.
func staticVerdict(rel numeral.Relation, lhs, rhs constant.Value) Verdict {
	if lhs == nil || rhs == nil {
		return VerdictUndecidable
	}
	if lhs.Kind() == constant.Unknown || rhs.Kind() == constant.Unknown {
		return VerdictUndecidable
	}

	ord := numeral.EqualTo
	switch {
	case constant.Compare(lhs, token.LSS, rhs):
		ord = numeral.LessThan
	case constant.Compare(lhs, token.GTR, rhs):
		ord = numeral.GreaterThan
	}

	if rel.Holds(ord) {
		return VerdictSatisfied
	}
	return VerdictViolated
}
