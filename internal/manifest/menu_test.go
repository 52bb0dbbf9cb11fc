package manifest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/decker502/rocketui/pkg/config"
)

var twoRoles = []config.MenuRole{config.MenuMain, config.MenuConnecting}

func TestParseMenu_Minimal(t *testing.T) {
	m, err := ParseMenu("rocket.txt", []byte(`{ main { a.rml main z.rml connecting } }`), twoRoles)
	if err != nil {
		t.Fatalf("ParseMenu failed: %v", err)
	}

	want := []MenuSlot{
		{Role: config.MenuMain, Path: "a.rml", ID: "main"},
		{Role: config.MenuConnecting, Path: "z.rml", ID: "connecting"},
	}
	if !reflect.DeepEqual(m.Slots, want) {
		t.Errorf("Slots: got %+v, want %+v", m.Slots, want)
	}
	if len(m.Documents) != 0 {
		t.Errorf("Expected no extra documents, got %v", m.Documents)
	}
	if m.Cursor != "" {
		t.Errorf("Expected no cursor, got %q", m.Cursor)
	}
}

func TestParseMenu_Full(t *testing.T) {
	src := `
{
	CURSOR ui/cursor.rml
	Main
	{
		"ui/main menu.rml" main
		ui/connecting.rml connecting
		ui/extra.rml
		ui/readme.txt
	}
	misc
	{
		ui/options.rml
		ui/notes.txt
		ui/credits.RML
	}
}
`
	m, err := ParseMenu("rocket.txt", []byte(src), twoRoles)
	if err != nil {
		t.Fatalf("ParseMenu failed: %v", err)
	}

	if m.Cursor != "ui/cursor.rml" {
		t.Errorf("Cursor: got %q", m.Cursor)
	}
	if m.Slots[0].Path != "ui/main menu.rml" {
		t.Errorf("Quoted path not preserved: %q", m.Slots[0].Path)
	}

	wantDocs := []string{"ui/extra.rml", "ui/options.rml", "ui/credits.RML"}
	if !reflect.DeepEqual(m.Documents, wantDocs) {
		t.Errorf("Documents: got %v, want %v", m.Documents, wantDocs)
	}
	if len(m.Warnings) != 2 {
		t.Errorf("Expected 2 warnings for non-RML files, got %v", m.Warnings)
	}

	slot, ok := m.Slot(config.MenuConnecting)
	if !ok || slot.ID != "connecting" {
		t.Errorf("Slot(connecting) = %+v, %v", slot, ok)
	}
	if _, ok := m.Slot(config.MenuLoading); ok {
		t.Error("Loading slot was not required and should be absent")
	}
}

func TestParseMenu_CursorSkipping(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		cursor string
	}{
		{"non-RML cursor is skipped", `{ cursor cursor.png main { a.rml main b.rml connecting } }`, ""},
		{"cursor followed by brace", `{ main { a.rml main b.rml connecting } cursor }`, ""},
		{"later cursor wins", `{ cursor a.rml cursor b.rml main { a.rml main b.rml connecting } }`, "b.rml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMenu("rocket.txt", []byte(tt.src), twoRoles)
			if err != nil {
				t.Fatalf("ParseMenu failed: %v", err)
			}
			if m.Cursor != tt.cursor {
				t.Errorf("Cursor: got %q, want %q", m.Cursor, tt.cursor)
			}
			if len(m.Warnings) != 0 {
				t.Errorf("Cursor skipping must not warn: %v", m.Warnings)
			}
		})
	}
}

func TestParseMenu_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty input", ``, ErrUnexpectedEOF},
		{"no opening brace", `main { a.rml main b.rml connecting }`, ErrExpectedBrace},
		{"unclosed manifest", `{ main { a.rml main b.rml connecting }`, ErrUnexpectedEOF},
		{"main without brace", `{ main a.rml main b.rml connecting }`, ErrExpectedBrace},
		{"missing slot pair", `{ main { a.rml main } }`, ErrMissingSlot},
		{"missing slot id", `{ main { a.rml main b.rml } }`, ErrMissingSlot},
		{"EOF inside slots", `{ main { a.rml main b.rml`, ErrUnexpectedEOF},
		{"unclosed main", `{ main { a.rml main b.rml connecting extra.rml`, ErrUnexpectedEOF},
		{"unclosed misc", `{ main { a.rml main b.rml connecting } misc { x.rml`, ErrUnexpectedEOF},
		{"misc without brace", `{ misc x.rml }`, ErrExpectedBrace},
		{"cursor at EOF", `{ cursor`, ErrUnexpectedEOF},
		{"no main section", `{ misc { x.rml } }`, ErrMissingSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMenu("rocket.txt", []byte(tt.src), twoRoles)
			if err == nil {
				t.Fatalf("Expected error, got manifest %+v", m)
			}
			if m != nil {
				t.Error("Failed parse must not return a partial manifest")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.File != "rocket.txt" {
				t.Errorf("Expected *ParseError for rocket.txt, got %T %v", err, err)
			}
		})
	}
}

func TestParseMenu_NoRoles(t *testing.T) {
	m, err := ParseMenu("rocket.txt", []byte(`{ misc { x.rml } }`), nil)
	if err != nil {
		t.Fatalf("ParseMenu with no required roles failed: %v", err)
	}
	if len(m.Slots) != 0 || len(m.Documents) != 1 {
		t.Errorf("Unexpected manifest: %+v", m)
	}
}

func TestParseMenu_IgnoresTrailingContent(t *testing.T) {
	m, err := ParseMenu("rocket.txt", []byte(`{ main { a.rml main b.rml connecting } } misc {`), twoRoles)
	if err != nil {
		t.Fatalf("Content after the closing brace should be ignored: %v", err)
	}
	if len(m.Documents) != 0 {
		t.Errorf("Expected no documents, got %v", m.Documents)
	}
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{File: "ui/rocket.txt", Line: 3, Err: ErrUnexpectedEOF, Msg: "expecting '}'"}
	want := "error parsing ui/rocket.txt:3: unexpected end of file: expecting '}'"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
