package generator

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/xob0t/GroveIcon/pkg/icon"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestExportDefaultTargets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	paths, err := Export(dir, icon.Compose(), DefaultTargets)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("len(paths) = %d, want 3", len(paths))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("files in build = %d, want 3", len(entries))
	}

	for i, tg := range DefaultTargets {
		want := filepath.Join(dir, tg.Name)
		if paths[i] != want {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want)
		}
		img := decodePNG(t, want)
		if b := img.Bounds(); b.Dx() != tg.Size || b.Dy() != tg.Size {
			t.Errorf("%s bounds = %v, want %dx%d", tg.Name, b, tg.Size, tg.Size)
		}
		if _, ok := img.(*image.NRGBA); !ok {
			t.Errorf("%s decoded as %T, want *image.NRGBA (alpha channel)", tg.Name, img)
		}
		if a := rgbaAt(img, 0, 0).A; a != 0 {
			t.Errorf("%s (0,0) alpha = %d, want 0", tg.Name, a)
		}
	}
}

func TestExportDownscalesMatchFullSize(t *testing.T) {
	dir := t.TempDir()
	if _, err := Export(dir, icon.Compose(), DefaultTargets); err != nil {
		t.Fatalf("Export: %v", err)
	}

	full := decodePNG(t, filepath.Join(dir, "icon.png"))
	smaller := map[int]image.Image{
		512: decodePNG(t, filepath.Join(dir, "icon-512.png")),
		256: decodePNG(t, filepath.Join(dir, "icon-256.png")),
	}

	// Points deep inside flat regions of the 1024px icon.
	samples := []struct {
		name string
		x, y int
	}{
		{"background", 150, 300},
		{"center canopy", 512, 574},
		{"left canopy", 317, 664},
		{"right canopy", 707, 664},
		{"center trunk", 512, 770},
	}
	for size, img := range smaller {
		scale := icon.Size / size
		for _, s := range samples {
			want := rgbaAt(full, s.x, s.y)
			got := rgbaAt(img, s.x/scale, s.y/scale)
			if !near(got, want, 3) {
				t.Errorf("%dpx %s = %v, want ~%v", size, s.name, got, want)
			}
		}
	}
}

func TestExportIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	img := icon.Compose()

	first := map[string][]byte{}
	if _, err := Export(dir, img, DefaultTargets); err != nil {
		t.Fatalf("first Export: %v", err)
	}
	for _, tg := range DefaultTargets {
		b, err := os.ReadFile(filepath.Join(dir, tg.Name))
		if err != nil {
			t.Fatal(err)
		}
		first[tg.Name] = b
	}

	// Second run reuses the existing directory and recomposes from scratch.
	if _, err := Export(dir, icon.Compose(), DefaultTargets); err != nil {
		t.Fatalf("second Export: %v", err)
	}
	for _, tg := range DefaultTargets {
		b, err := os.ReadFile(filepath.Join(dir, tg.Name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b, first[tg.Name]) {
			t.Errorf("%s differs between runs", tg.Name)
		}
	}
}

func TestExportDirCollidesWithFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "build")
	if err := os.WriteFile(dir, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := Export(dir, icon.Compose(), DefaultTargets)
	if err == nil {
		t.Fatal("Export succeeded, want error")
	}
	if len(paths) != 0 {
		t.Errorf("paths = %v, want none", paths)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "build" || entries[0].IsDir() {
		t.Errorf("root contents changed: %v", entries)
	}
}

func TestExportStopsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	targets := []Target{
		{Name: "ok.png", Size: 64},
		{Name: "bad.gif", Size: 32},
		{Name: "never.png", Size: 16},
	}

	paths, err := Export(dir, icon.Compose(), targets)
	if err == nil {
		t.Fatal("Export succeeded, want error")
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "ok.png" {
		t.Errorf("paths = %v, want [ok.png]", paths)
	}
	if _, err := os.Stat(filepath.Join(dir, "never.png")); !os.IsNotExist(err) {
		t.Errorf("never.png stat err = %v, want not exist", err)
	}
}
