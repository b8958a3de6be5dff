package lexer_test

import (
	"testing"

	"github.com/agenthands/ntac/pkg/compiler/lexer"
)

func TestScannerZeroAlloc(t *testing.T) {
	src := []byte(`(alpha + 42) * beta_2 ^ 3.14`)
	s := lexer.NewScanner(src)

	allocs := testing.AllocsPerRun(10, func() {
		s.Reset(src)
		for {
			tok := s.Next()
			if tok.Kind == lexer.KindEOF {
				break
			}
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}

func TestScannerKinds(t *testing.T) {
	src := []byte(`(a1 + 42) * b_2 ^ 3.14 % c / d - e`)
	s := lexer.NewScanner(src)

	expected := []lexer.Kind{
		lexer.KindLParen,
		lexer.KindIdentifier,
		lexer.KindOperator,
		lexer.KindNumber,
		lexer.KindRParen,
		lexer.KindOperator,
		lexer.KindIdentifier,
		lexer.KindOperator,
		lexer.KindNumber,
		lexer.KindOperator,
		lexer.KindIdentifier,
		lexer.KindOperator,
		lexer.KindIdentifier,
		lexer.KindOperator,
		lexer.KindIdentifier,
		lexer.KindEOF,
	}

	for i, exp := range expected {
		tok := s.Next()
		if tok.Kind != exp {
			t.Errorf("token %d: expected kind %v, got %v", i, exp, tok.Kind)
		}
	}
}

func TestScannerLexemes(t *testing.T) {
	src := []byte(`count_1 + 10.5`)
	s := lexer.NewScanner(src)

	expected := []string{"count_1", "+", "10.5"}
	for i, exp := range expected {
		tok := s.Next()
		if got := tok.Text(src); got != exp {
			t.Errorf("token %d: expected %q, got %q", i, exp, got)
		}
	}
	if tok := s.Next(); tok.Kind != lexer.KindEOF {
		t.Errorf("expected EOF, got kind %v", tok.Kind)
	}
}

func TestScannerMultipleDots(t *testing.T) {
	// Dotted runs are not validated as numbers; "1.2.3" is one token.
	src := []byte(`1.2.3`)
	s := lexer.NewScanner(src)

	tok := s.Next()
	if tok.Kind != lexer.KindNumber {
		t.Fatalf("expected number, got kind %v", tok.Kind)
	}
	if got := tok.Text(src); got != "1.2.3" {
		t.Errorf("expected %q, got %q", "1.2.3", got)
	}
}

func TestScannerSkipsUnknownBytes(t *testing.T) {
	src := []byte(`a ? b @ # c!`)
	s := lexer.NewScanner(src)

	expected := []string{"a", "b", "c"}
	for i, exp := range expected {
		tok := s.Next()
		if tok.Kind != lexer.KindIdentifier {
			t.Fatalf("token %d: expected identifier, got kind %v", i, tok.Kind)
		}
		if got := tok.Text(src); got != exp {
			t.Errorf("token %d: expected %q, got %q", i, exp, got)
		}
	}
	if tok := s.Next(); tok.Kind != lexer.KindEOF {
		t.Errorf("expected EOF after unknown bytes, got kind %v", tok.Kind)
	}
}

func TestScanWholeInput(t *testing.T) {
	src := []byte(`x + y`)
	tokens := lexer.NewScanner(src).Scan()

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[1].Kind != lexer.KindOperator || tokens[1].Text(src) != "+" {
		t.Errorf("middle token: expected operator +, got %q", tokens[1].Text(src))
	}
}

func TestScanEmptyInput(t *testing.T) {
	if tokens := lexer.NewScanner(nil).Scan(); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %d", len(tokens))
	}
}
