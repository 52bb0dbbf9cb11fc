package manifest

import "testing"

func TestLexerTokens(t *testing.T) {
	input := `{
	// line comment
	cursor "ui/my cursor.rml"
	main{a.rml main} /* block
	comment */ misc
}`

	tokens := NewLexer([]byte(input)).Tokens()

	want := []struct {
		typ  TokenType
		lit  string
		line int
	}{
		{TokenLBrace, "{", 1},
		{TokenWord, "cursor", 3},
		{TokenString, "ui/my cursor.rml", 3},
		{TokenWord, "main", 4},
		{TokenLBrace, "{", 4},
		{TokenWord, "a.rml", 4},
		{TokenWord, "main", 4},
		{TokenRBrace, "}", 4},
		{TokenWord, "misc", 5},
		{TokenRBrace, "}", 6},
	}

	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		got := tokens[i]
		if got.Type != w.typ || got.Literal != w.lit || got.Line != w.line {
			t.Errorf("token %d: got {%v %q line %d}, want {%v %q line %d}", i, got.Type, got.Literal, got.Line, w.typ, w.lit, w.line)
		}
	}
}

func TestLexerUnterminated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unterminated string stops at newline", "\"abc\nnext", []string{"abc", "next"}},
		{"unterminated string at EOF", "\"abc", []string{"abc"}},
		{"unterminated block comment", "a /* b c", []string{"a"}},
		{"comment directly after word", "a.rml// tail", []string{"a.rml"}},
		{"path with slashes", "ui/hud/a.rml", []string{"ui/hud/a.rml"}},
		{"empty", "   \t\r\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewLexer([]byte(tt.input)).Tokens()
			if len(tokens) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, tokens)
			}
			for i := range tokens {
				if tokens[i].Literal != tt.want[i] {
					t.Errorf("token %d: got %q, want %q", i, tokens[i].Literal, tt.want[i])
				}
			}
		})
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	l := NewLexer([]byte("x"))
	l.NextToken()
	for i := 0; i < 3; i++ {
		if !l.NextToken().IsEOF() {
			t.Fatal("Expected EOF to repeat")
		}
	}
}

func TestTokenIs(t *testing.T) {
	if !(Token{Type: TokenWord, Literal: "MAIN"}).Is("main") {
		t.Error("Keyword match should be case-insensitive")
	}
	if !(Token{Type: TokenString, Literal: "misc"}).Is("misc") {
		t.Error("Quoted keywords should match")
	}
	if (Token{Type: TokenLBrace, Literal: "{"}).Is("{") {
		t.Error("Braces are never keywords")
	}
}
