package core_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"herogen-ebiten/core"
)

func TestImagePath(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"D.Va", "images/D.Va.png"},
		{"Soldier 76", "images/Soldier 76.png"},
		{"Wrecking Ball", "images/Wrecking Ball.png"},
	}
	for _, c := range cases {
		if got := core.ImagePath(c.name); got != c.want {
			t.Errorf("ImagePath(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestFindImage(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.Mkdir("images", 0o755); err != nil {
		t.Fatalf("mkdir images: %v", err)
	}
	if err := os.WriteFile(filepath.Join("images", "Tracer.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	if err := os.Mkdir(filepath.Join("images", "Mercy.png"), 0o755); err != nil {
		t.Fatalf("mkdir decoy: %v", err)
	}

	path, err := core.FindImage("Tracer")
	if err != nil {
		t.Fatalf("FindImage(Tracer): unexpected error: %v", err)
	}
	if path != "images/Tracer.png" {
		t.Errorf("FindImage(Tracer) = %q, want %q", path, "images/Tracer.png")
	}

	if _, err := core.FindImage("Genji"); !errors.Is(err, core.ErrImageNotFound) {
		t.Errorf("FindImage(Genji): got err %v, want ErrImageNotFound", err)
	}

	// A directory at the expected path is not a usable image.
	if _, err := core.FindImage("Mercy"); !errors.Is(err, core.ErrImageNotFound) {
		t.Errorf("FindImage(Mercy): got err %v, want ErrImageNotFound", err)
	}
}

func TestFitSize(t *testing.T) {
	cases := []struct {
		name                   string
		srcW, srcH, maxW, maxH int
		wantW, wantH           int
	}{
		{"downscale wide", 800, 400, 400, 280, 400, 200},
		{"downscale tall", 400, 800, 400, 280, 140, 280},
		{"upscale", 100, 100, 400, 280, 280, 280},
		{"exact fit", 400, 280, 400, 280, 400, 280},
		{"clamped to 1px", 4000, 10, 40, 280, 40, 1},
		{"degenerate source", 0, 0, 400, 280, 1, 1},
	}
	for _, c := range cases {
		w, h := core.FitSize(c.srcW, c.srcH, c.maxW, c.maxH)
		if w != c.wantW || h != c.wantH {
			t.Errorf("%s: FitSize(%d, %d, %d, %d) = %dx%d, want %dx%d",
				c.name, c.srcW, c.srcH, c.maxW, c.maxH, w, h, c.wantW, c.wantH)
		}
	}
}
