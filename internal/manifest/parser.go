package manifest

import "fmt"

// parser 两种清单共用的 token 游标，支持回退一个 token
type parser struct {
	file   string
	lexer  *Lexer
	peeked *Token
}

func newParser(file string, src []byte) *parser {
	return &parser{
		file:  file,
		lexer: NewLexer(src),
	}
}

func (p *parser) next() Token {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok
	}
	return p.lexer.NextToken()
}

func (p *parser) unread(tok Token) {
	p.peeked = &tok
}

// expectOpen 读取一个 '{'，what 用于错误信息
func (p *parser) expectOpen(what string) error {
	tok := p.next()
	if tok.Type == TokenLBrace {
		return nil
	}
	if tok.IsEOF() {
		return p.fail(tok, ErrUnexpectedEOF, "expecting '{' to open %s", what)
	}
	return p.fail(tok, ErrExpectedBrace, "expecting '{' to open %s but found %s", what, tok)
}

func (p *parser) fail(tok Token, err error, format string, args ...any) *ParseError {
	return &ParseError{
		File: p.file,
		Line: tok.Line,
		Err:  err,
		Msg:  fmt.Sprintf(format, args...),
	}
}
