package tac

// OpAssign is the operator of the final store into the caller-named
// result variable. Assignment instructions leave Arg2 empty.
const OpAssign = "="

// Instruction represents one three-address-code step. Arg1 and Arg2 hold
// operand strings: literals, identifiers, or earlier temporaries.
type Instruction struct {
	Op     string
	Arg1   string
	Arg2   string
	Result string
}

// IsAssign reports whether the instruction is the final-store form.
func (in Instruction) IsAssign() bool {
	return in.Op == OpAssign
}

// String renders the instruction as a three-address-code line.
func (in Instruction) String() string {
	if in.IsAssign() {
		return in.Result + " = " + in.Arg1
	}
	return in.Result + " = " + in.Arg1 + " " + in.Op + " " + in.Arg2
}

// Quadruple renders the instruction as a 4-field record
// (op, arg1, arg2, result). Assignments show a blank second operand.
func (in Instruction) Quadruple() string {
	arg2 := in.Arg2
	if in.IsAssign() {
		arg2 = " "
	}
	return "(" + in.Op + ", " + in.Arg1 + ", " + arg2 + ", " + in.Result + ")"
}
