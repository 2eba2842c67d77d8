// GroveIcon — Renders the Grove application icon.
//
// Usage:
//
//	groveicon
//
// Writes build/icon.png (1024px), build/icon-512.png and build/icon-256.png
// under the project root, the nearest directory upward holding a go.mod.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xob0t/GroveIcon/pkg/generator"
	"github.com/xob0t/GroveIcon/pkg/icon"
)

const buildDirName = "build"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "help", "-h", "--help":
			printUsage()
			return
		default:
			printUsage()
			fatal(fmt.Errorf("unexpected argument %q", os.Args[1]))
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		fatal(err)
	}
	if err := run(projectRoot(wd)); err != nil {
		fatal(err)
	}
}

// run renders the icon and writes every target into <root>/build.
func run(root string) error {
	img := icon.Compose()

	buildDir := filepath.Join(root, buildDirName)
	paths, err := generator.Export(buildDir, img, generator.DefaultTargets)
	if err != nil {
		return err
	}

	fmt.Printf("Saved: %s\n", paths[0])
	fmt.Printf("Done! Icons saved to %s/\n", buildDirName)
	return nil
}

// projectRoot walks up from dir to the first directory containing go.mod.
// It returns dir itself when none is found.
func projectRoot(dir string) string {
	dir = filepath.Clean(dir)
	for cur := dir; ; {
		if fi, err := os.Stat(filepath.Join(cur, "go.mod")); err == nil && !fi.IsDir() {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`GroveIcon — Grove application icon renderer

USAGE:
    groveicon

Run from anywhere inside the project. Writes to <project root>/build/:
    icon.png        1024x1024
    icon-512.png     512x512
    icon-256.png     256x256
`)
}
