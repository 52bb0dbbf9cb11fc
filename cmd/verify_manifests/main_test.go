package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/rocketui/pkg/game"
)

func failedReports() []ValidationReport {
	var failed []ValidationReport
	for _, r := range validationReports {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// TestVerifyRejectsOversizedManifests 过大的清单与 Rocket.Init 一样判为失败
func TestVerifyRejectsOversizedManifests(t *testing.T) {
	padding := "// " + strings.Repeat("x", game.MaxManifestSize) + "\n"
	fsys := fstest.MapFS{
		game.DefaultMenuFile: {Data: []byte(padding + "{ }")},
		game.DefaultHudFile:  {Data: []byte(padding + "units { }")},
	}

	validationReports = nil
	verifyMenu(fsys)
	verifyHud(fsys)

	if got := len(failedReports()); got != 2 {
		t.Fatalf("failed reports = %d, want 2: %+v", got, validationReports)
	}
}

// TestVerifyShippedManifests 仓库自带的清单全部通过
func TestVerifyShippedManifests(t *testing.T) {
	validationReports = nil
	fsys := fstest.MapFS{}
	for _, name := range []string{game.DefaultMenuFile, game.DefaultHudFile} {
		data, err := readRepoFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		fsys[name] = &fstest.MapFile{Data: data}
	}

	verifyMenu(fsys)
	if failed := failedReports(); len(failed) != 0 {
		t.Errorf("menu checks failed: %+v", failed)
	}
}

func readRepoFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join("..", "..", name))
}
