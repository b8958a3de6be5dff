package python

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"

	"github.com/agenthands/ntac/pkg/tac"
)

// binOps maps gpython arithmetic operators onto the instruction-set
// operator symbols. Pow lowers to "^" like the core front end's
// exponent.
var binOps = map[ast.OperatorNumber]string{
	ast.Add:    "+",
	ast.Sub:    "-",
	ast.Mult:   "*",
	ast.Div:    "/",
	ast.Modulo: "%",
	ast.Pow:    "^",
}

// Compiler lowers Python expression syntax to the same three-address
// instruction stream the shunting-yard front end produces. Precedence
// and associativity come from the Python grammar, so "a ** b ** c"
// reduces right-first like "a ^ b ^ c" on the core path.
type Compiler struct {
	out       []tac.Instruction
	tempCount int
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile parses src as a single Python expression and returns its
// instruction sequence, ending with an assignment into resultVar.
func (c *Compiler) Compile(src, resultVar string) ([]tac.Instruction, error) {
	c.out = nil
	c.tempCount = 1

	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	mod, err := parser.Parse(strings.NewReader(src), "<string>", py.EvalMode)
	if err != nil {
		return nil, fmt.Errorf("python parse error: %w", err)
	}

	expression, ok := mod.(*ast.Expression)
	if !ok {
		return nil, fmt.Errorf("expected *ast.Expression, got %T", mod)
	}

	operand, err := c.emitExpr(expression.Body)
	if err != nil {
		return nil, err
	}

	c.out = append(c.out, tac.Instruction{Op: tac.OpAssign, Arg1: operand, Result: resultVar})
	return c.out, nil
}

// emitExpr lowers one expression node and returns the operand string
// holding its value: a literal, a name, or a fresh temporary.
func (c *Compiler) emitExpr(expr ast.Expr) (string, error) {
	switch e := expr.(type) {
	case *ast.Num:
		return fmt.Sprintf("%v", e.N), nil

	case *ast.Name:
		return string(e.Id), nil

	case *ast.BinOp:
		op, ok := binOps[e.Op]
		if !ok {
			return "", fmt.Errorf("unsupported operator: %v", e.Op)
		}
		arg1, err := c.emitExpr(e.Left)
		if err != nil {
			return "", err
		}
		arg2, err := c.emitExpr(e.Right)
		if err != nil {
			return "", err
		}
		temp := "t" + strconv.Itoa(c.tempCount)
		c.tempCount++
		c.out = append(c.out, tac.Instruction{Op: op, Arg1: arg1, Arg2: arg2, Result: temp})
		return temp, nil

	case *ast.UnaryOp:
		// Fold unary minus on a numeric literal into the literal itself;
		// the instruction set has no unary form.
		if e.Op == ast.USub {
			if num, ok := e.Operand.(*ast.Num); ok {
				return "-" + fmt.Sprintf("%v", num.N), nil
			}
		}
		if e.Op == ast.UAdd {
			return c.emitExpr(e.Operand)
		}
		return "", fmt.Errorf("unsupported unary operator: %v", e.Op)

	default:
		return "", fmt.Errorf("unsupported expression: %T", expr)
	}
}
