package manifest

// Lexer 清单分词器
type Lexer struct {
	input []byte
	pos   int
	line  int
}

// NewLexer 创建分词器
func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
	}
}

// NextToken 返回下一个 token，输入耗尽后一直返回 TokenEOF
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Line: l.line}
	}

	ch := l.input[l.pos]
	switch ch {
	case '{':
		l.pos++
		return Token{Type: TokenLBrace, Literal: "{", Line: l.line}
	case '}':
		l.pos++
		return Token{Type: TokenRBrace, Literal: "}", Line: l.line}
	case '"':
		return l.readString()
	}

	return l.readWord()
}

// Tokens 读取全部 token（不含结尾的 EOF）
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.IsEOF() {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]

		if isSpace(ch) {
			if ch == '\n' {
				l.line++
			}
			l.pos++
			continue
		}

		if ch == '/' && l.pos+1 < len(l.input) {
			switch l.input[l.pos+1] {
			case '/':
				l.skipLineComment()
				continue
			case '*':
				l.skipBlockComment()
				continue
			}
		}
		return
	}
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

// skipBlockComment 未闭合的块注释吞掉剩余输入
func (l *Lexer) skipBlockComment() {
	l.pos += 2
	for l.pos < len(l.input) {
		if l.input[l.pos] == '*' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/' {
			l.pos += 2
			return
		}
		if l.input[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
}

// readString 读取引号字符串，遇到换行或输入结束时截断
func (l *Lexer) readString() Token {
	line := l.line
	l.pos++ // opening quote
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '"' {
			lit := string(l.input[start:l.pos])
			l.pos++
			return Token{Type: TokenString, Literal: lit, Line: line}
		}
		if ch == '\n' {
			break
		}
		l.pos++
	}
	return Token{Type: TokenString, Literal: string(l.input[start:l.pos]), Line: line}
}

func (l *Lexer) readWord() Token {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if isSpace(ch) || ch == '{' || ch == '}' || ch == '"' {
			break
		}
		if ch == '/' && l.pos+1 < len(l.input) && (l.input[l.pos+1] == '/' || l.input[l.pos+1] == '*') {
			break
		}
		l.pos++
	}
	return Token{Type: TokenWord, Literal: string(l.input[start:l.pos]), Line: l.line}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
}
