package lexer

// Scanner performs lexical analysis on a single arithmetic expression.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
}

// Next returns the next token from the source. Bytes that start no known
// token class are skipped without error.
func (s *Scanner) Next() Token {
	for s.cursor < len(s.source) {
		start := s.cursor
		ch := s.source[s.cursor]

		switch {
		case isSpace(ch):
			s.cursor++

		case isDigit(ch):
			return s.scanNumber()

		case isAlpha(ch):
			return s.scanIdentifier()

		case isOperator(ch):
			s.cursor++
			return Token{Kind: KindOperator, Offset: uint32(start), Length: 1}

		case ch == '(':
			s.cursor++
			return Token{Kind: KindLParen, Offset: uint32(start), Length: 1}

		case ch == ')':
			s.cursor++
			return Token{Kind: KindRParen, Offset: uint32(start), Length: 1}

		default:
			// Unrecognized byte: drop it and keep scanning.
			s.cursor++
		}
	}

	return Token{Kind: KindEOF, Offset: uint32(len(s.source))}
}

// Scan tokenizes the remaining source in one pass, excluding the final EOF.
func (s *Scanner) Scan() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		if tok.Kind == KindEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// scanNumber consumes a maximal run of digits and '.' characters. A run
// with several dots (e.g. "1.2.3") still forms one token; downstream
// stages treat the lexeme as an opaque operand string.
func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isDigit(s.source[s.cursor]) || s.source[s.cursor] == '.') {
		s.cursor++
	}
	return Token{Kind: KindNumber, Offset: uint32(start), Length: uint32(s.cursor - start)}
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor]) || s.source[s.cursor] == '_') {
		s.cursor++
	}
	return Token{Kind: KindIdentifier, Offset: uint32(start), Length: uint32(s.cursor - start)}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '^':
		return true
	}
	return false
}
