package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/agenthands/ntac/pkg/tac"
)

// printPlain writes the four views with bare index prefixes: 1-based for
// TAC and quadruples, 0-based for the triple tables.
func printPlain(instructions []tac.Instruction) {
	fmt.Println("\nThree Address Code (TAC):")
	for i, row := range tac.Lines(instructions) {
		fmt.Printf("%d: %s\n", i+1, row)
	}

	fmt.Println("\nQuadruples:")
	for i, row := range tac.Quadruples(instructions) {
		fmt.Printf("%d: %s\n", i+1, row)
	}

	fmt.Println("\nTriples:")
	for i, tr := range tac.Triples(instructions) {
		fmt.Printf("%d: %s\n", i, tr)
	}

	ind := tac.IndirectTriples(instructions)
	fmt.Println("\nIndirect Triples:")
	fmt.Println("Pointer Table:")
	for i, p := range ind.Pointers {
		fmt.Printf("%d -> %d\n", i, p)
	}
	fmt.Println("\nInstruction Table:")
	for i, tr := range ind.Table {
		fmt.Printf("%d: %s\n", i, tr)
	}
}

// printPretty renders the same views as bordered tables.
func printPretty(instructions []tac.Instruction) {
	fmt.Println("\nThree Address Code (TAC):")
	for i, row := range tac.Lines(instructions) {
		fmt.Printf("%d: %s\n", i+1, row)
	}

	quads := table.NewWriter()
	quads.SetTitle("Quadruples")
	quads.AppendHeader(table.Row{"#", "Op", "Arg1", "Arg2", "Result"})
	for i, in := range instructions {
		arg2 := in.Arg2
		if in.IsAssign() {
			arg2 = ""
		}
		quads.AppendRow(table.Row{i + 1, in.Op, in.Arg1, arg2, in.Result})
	}
	fmt.Println(quads.Render())

	triples := table.NewWriter()
	triples.SetTitle("Triples")
	triples.AppendHeader(table.Row{"#", "Op", "Arg1", "Arg2"})
	for i, tr := range tac.Triples(instructions) {
		triples.AppendRow(table.Row{i, tr.Op, tr.Arg1, tr.Arg2})
	}
	fmt.Println(triples.Render())

	ind := tac.IndirectTriples(instructions)
	pointers := table.NewWriter()
	pointers.SetTitle("Indirect Triples: Pointer Table")
	pointers.AppendHeader(table.Row{"Position", "Triple"})
	for i, p := range ind.Pointers {
		pointers.AppendRow(table.Row{i, p})
	}
	fmt.Println(pointers.Render())

	instrs := table.NewWriter()
	instrs.SetTitle("Indirect Triples: Instruction Table")
	instrs.AppendHeader(table.Row{"#", "Op", "Arg1", "Arg2"})
	for i, tr := range ind.Table {
		instrs.AppendRow(table.Row{i, tr.Op, tr.Arg1, tr.Arg2})
	}
	fmt.Println(instrs.Render())
}
