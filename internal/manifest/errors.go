package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF 在必需的 token 之前遇到输入结束
	ErrUnexpectedEOF = errors.New("unexpected end of file")
	// ErrExpectedBrace 需要 '{' 或 '}' 的位置出现了其他 token
	ErrExpectedBrace = errors.New("expected brace")
	// ErrMissingSlot main 段没有给出某个必需菜单槽位的路径或ID
	ErrMissingSlot = errors.New("missing menu slot")
	// ErrMissingSection 清单缺少必需的段
	ErrMissingSection = errors.New("missing required section")
)

// ParseError 致命解析错误，携带文件名和行号
// 通过 errors.Is 可以判断具体的错误类别
type ParseError struct {
	File string
	Line int
	Err  error
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error parsing %s:%d: %v: %s", e.File, e.Line, e.Err, e.Msg)
	}
	return fmt.Sprintf("error parsing %s: %v: %s", e.File, e.Err, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
