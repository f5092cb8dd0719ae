package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadGrid_FromFile(t *testing.T) {
	mapDir := t.TempDir()
	mapPath := filepath.Join(mapDir, "test.map")
	content := "# tiny room\n1,1,1\n1,0,1\n\n1 2 1\n"
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	g, err := LoadGrid(mapPath, 64)
	if err != nil {
		t.Fatalf("load map: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("expected 3x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if got := g.Tile(1, 1); got != TileEmpty {
		t.Errorf("expected empty centre, got %v", got)
	}
	if got := g.Tile(1, 2); got != TilePillar {
		t.Errorf("expected pillar at (1,2), got %v", got)
	}
}

func TestLoadGrid_MissingFile(t *testing.T) {
	_, err := LoadGrid(filepath.Join(t.TempDir(), "missing.map"), 64)
	if err == nil || !strings.Contains(err.Error(), "failed to open map file") {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestParseGrid_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "# nothing here\n", "no tiles"},
		{"ragged", "1 1 1\n1 0\n", "inconsistent width"},
		{"not a number", "1 x 1\n", "invalid tile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(strings.NewReader(tt.content), 64)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
