package reducer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/agenthands/ntac/pkg/compiler/lexer"
	"github.com/agenthands/ntac/pkg/tac"
)

// ErrMalformed reports an expression whose shape leaves an operator
// without two operands, e.g. "a +" or "* b". Unbalanced parentheses and
// unknown characters are tolerated silently and never produce it.
var ErrMalformed = errors.New("malformed expression")

// Reducer turns a token stream into a three-address-code instruction
// sequence using operator-precedence (shunting-yard) evaluation.
type Reducer struct {
	scanner *lexer.Scanner
	src     []byte

	operands  []string
	operators []lexer.Token
	out       []tac.Instruction
	tempCount int
}

// New creates a reducer over the given scanner and its source.
func New(s *lexer.Scanner, src []byte) *Reducer {
	return &Reducer{scanner: s, src: src}
}

// Reduce consumes the token stream in one left-to-right pass and returns
// the instruction sequence, ending with an assignment of the final value
// into resultVar. An empty expression yields no instructions. Temporary
// names t1, t2, ... are scoped to the call.
func (r *Reducer) Reduce(resultVar string) ([]tac.Instruction, error) {
	r.operands = r.operands[:0]
	r.operators = r.operators[:0]
	r.out = nil
	r.tempCount = 1

	for {
		tok := r.scanner.Next()
		if tok.Kind == lexer.KindEOF {
			break
		}

		switch tok.Kind {
		case lexer.KindNumber, lexer.KindIdentifier:
			r.operands = append(r.operands, tok.Text(r.src))

		case lexer.KindOperator:
			op := tok.Text(r.src)
			rightAssoc := op == "^"
			for len(r.operators) > 0 {
				top := r.operators[len(r.operators)-1]
				if top.Kind != lexer.KindOperator {
					break
				}
				topPrec := precedence(top.Text(r.src))
				if (!rightAssoc && topPrec >= precedence(op)) ||
					(rightAssoc && topPrec > precedence(op)) {
					if err := r.popReduce(); err != nil {
						return nil, err
					}
					continue
				}
				break
			}
			r.operators = append(r.operators, tok)

		case lexer.KindLParen:
			// Barrier: nothing below it reduces until the matching ')'.
			r.operators = append(r.operators, tok)

		case lexer.KindRParen:
			for len(r.operators) > 0 && r.operators[len(r.operators)-1].Kind != lexer.KindLParen {
				if err := r.popReduce(); err != nil {
					return nil, err
				}
			}
			if len(r.operators) > 0 {
				r.operators = r.operators[:len(r.operators)-1]
			}
			// A ')' with no matching '(' is tolerated as a no-op.
		}
	}

	for len(r.operators) > 0 {
		if r.operators[len(r.operators)-1].Kind == lexer.KindLParen {
			// Unclosed '(' at end of input: drop it, never reduce it.
			r.operators = r.operators[:len(r.operators)-1]
			continue
		}
		if err := r.popReduce(); err != nil {
			return nil, err
		}
	}

	if len(r.operands) > 0 {
		r.out = append(r.out, tac.Instruction{
			Op:     tac.OpAssign,
			Arg1:   r.operands[len(r.operands)-1],
			Result: resultVar,
		})
	}

	return r.out, nil
}

// popReduce pops the top operator and its two operands, emits one
// instruction into a fresh temporary, and pushes that temporary back.
func (r *Reducer) popReduce() error {
	op := r.operators[len(r.operators)-1]
	r.operators = r.operators[:len(r.operators)-1]

	if len(r.operands) < 2 {
		return fmt.Errorf("%w: operator %q is missing an operand", ErrMalformed, op.Text(r.src))
	}
	arg2 := r.operands[len(r.operands)-1]
	arg1 := r.operands[len(r.operands)-2]
	r.operands = r.operands[:len(r.operands)-2]

	temp := "t" + strconv.Itoa(r.tempCount)
	r.tempCount++

	r.out = append(r.out, tac.Instruction{Op: op.Text(r.src), Arg1: arg1, Arg2: arg2, Result: temp})
	r.operands = append(r.operands, temp)
	return nil
}

// precedence ranks the operator set; anything unknown binds loosest.
func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/", "%":
		return 2
	case "^":
		return 3
	}
	return 0
}
