package game

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestReadManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"ui/rocket.txt": {Data: []byte("{ }")},
		"ui/empty.txt":  {Data: []byte{}},
		"ui/limit.txt":  {Data: []byte(strings.Repeat("x", MaxManifestSize-2))},
		"ui/large.txt":  {Data: []byte(strings.Repeat("x", MaxManifestSize-1))},
	}

	tests := []struct {
		path    string
		wantErr error
	}{
		{"ui/rocket.txt", nil},
		{"ui/limit.txt", nil},
		{"ui/missing.txt", ErrManifestMissing},
		{"ui/empty.txt", ErrManifestMissing},
		{"ui/large.txt", ErrManifestTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			data, err := ReadManifest(fsys, tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(data) == 0 {
					t.Error("expected data")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReadManifestNilFS(t *testing.T) {
	if _, err := ReadManifest(nil, "ui/rocket.txt"); !errors.Is(err, ErrManifestMissing) {
		t.Errorf("expected ErrManifestMissing, got %v", err)
	}
}
