package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindNumber
	KindIdentifier
	KindOperator // + - * / % ^
	KindLParen   // (
	KindRParen   // )
)

// Token represents a lexical unit pointing back to the source.
// Compact value type to keep scanning allocation-free.
type Token struct {
	Kind   Kind
	Offset uint32
	Length uint32
}

// Text returns the lexeme of the token within src.
func (t Token) Text(src []byte) string {
	return string(src[t.Offset : t.Offset+t.Length])
}
