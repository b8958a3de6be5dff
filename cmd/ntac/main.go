package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/agenthands/ntac/pkg/compiler/lexer"
	"github.com/agenthands/ntac/pkg/compiler/python"
	"github.com/agenthands/ntac/pkg/compiler/reducer"
	"github.com/agenthands/ntac/pkg/tac"
)

func main() {
	exprFlag := flag.String("expr", "", "expression to compile (prompts on stdin when empty)")
	resultFlag := flag.String("result", "", "variable that receives the final value (prompts on stdin when empty)")
	usePython := flag.Bool("python", false, "parse the expression as Python syntax")
	pretty := flag.Bool("pretty", false, "render the quadruple and triple views as tables")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	expression := *exprFlag
	resultVar := *resultFlag
	stdin := bufio.NewReader(os.Stdin)
	if expression == "" {
		expression = prompt(stdin, "Enter an expression: ")
	}
	if resultVar == "" {
		resultVar = prompt(stdin, "Enter the variable to store the result: ")
	}

	var instructions []tac.Instruction
	var err error
	if *usePython {
		instructions, err = python.NewCompiler().Compile(expression, resultVar)
	} else {
		src := []byte(expression)
		r := reducer.New(lexer.NewScanner(src), src)
		instructions, err = r.Reduce(resultVar)
	}
	if err != nil {
		fmt.Printf("Compilation Error: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("expression reduced", "expression", expression, "instructions", len(instructions))

	if *pretty {
		printPretty(instructions)
	} else {
		printPlain(instructions)
	}
}

func prompt(r *bufio.Reader, msg string) string {
	fmt.Print(msg)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
