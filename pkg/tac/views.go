package tac

// The view derivations below are pure projections of an instruction
// sequence; deriving the same view twice yields identical output.

// Triple is a 3-field IR record whose result is referenced by the
// instruction's position in the sequence rather than by name.
type Triple struct {
	Op   string
	Arg1 string
	Arg2 string
}

// String renders the triple as (op, arg1, arg2).
func (t Triple) String() string {
	return "(" + t.Op + ", " + t.Arg1 + ", " + t.Arg2 + ")"
}

// Indirect pairs a pointer table with a triple table. Pointers[i] names
// the row of Table that executes at position i, so execution order can
// be changed without rewriting the instruction table.
type Indirect struct {
	Pointers []int
	Table    []Triple
}

// Lines derives the three-address-code text view, one row per
// instruction.
func Lines(instructions []Instruction) []string {
	rows := make([]string, len(instructions))
	for i, in := range instructions {
		rows[i] = in.String()
	}
	return rows
}

// Quadruples derives the quadruple text view, one row per instruction.
func Quadruples(instructions []Instruction) []string {
	rows := make([]string, len(instructions))
	for i, in := range instructions {
		rows[i] = in.Quadruple()
	}
	return rows
}

// Triples derives the triple view. Operand strings are carried over
// verbatim; references to earlier temporaries keep their names instead
// of being rewritten to instruction indices.
func Triples(instructions []Instruction) []Triple {
	rows := make([]Triple, len(instructions))
	for i, in := range instructions {
		rows[i] = Triple{Op: in.Op, Arg1: in.Arg1, Arg2: in.Arg2}
	}
	return rows
}

// IndirectTriples derives the indirect-triple view. Instructions are
// never reordered here, so the pointer table is the identity mapping.
func IndirectTriples(instructions []Instruction) Indirect {
	pointers := make([]int, len(instructions))
	for i := range pointers {
		pointers[i] = i
	}
	return Indirect{
		Pointers: pointers,
		Table:    Triples(instructions),
	}
}
