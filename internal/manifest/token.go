// Package manifest 解析 rocket UI 使用的两种文本清单：菜单清单和 HUD 单元清单。
//
// 两种格式共用同一个分词器：以空白分隔单词，支持双引号字符串、
// "//" 行注释和 "/* */" 块注释，花括号总是单独成为一个 token。
// 关键字比较不区分大小写。
package manifest

import (
	"fmt"
	"strings"
)

// TokenType 词法单元类型
type TokenType int

const (
	TokenEOF    TokenType = iota
	TokenWord             // 裸单词，如 main、ui/main.rml
	TokenString           // "带引号的字符串"
	TokenLBrace           // {
	TokenRBrace           // }
)

// Token 词法单元
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

// IsEOF 是否为输入结束
func (t Token) IsEOF() bool {
	return t.Type == TokenEOF
}

// IsBrace 是否为花括号
func (t Token) IsBrace() bool {
	return t.Type == TokenLBrace || t.Type == TokenRBrace
}

// Is 判断 token 是否为指定关键字（不区分大小写）
// 引号字符串也可以作为关键字，与游戏原有的分词行为一致
func (t Token) Is(keyword string) bool {
	if t.Type != TokenWord && t.Type != TokenString {
		return false
	}
	return strings.EqualFold(t.Literal, keyword)
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	}
	if len(t.Literal) > 32 {
		return fmt.Sprintf("%q...", t.Literal[:32])
	}
	return fmt.Sprintf("%q", t.Literal)
}
