package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fwojciec/textcompare"
	"github.com/fwojciec/textcompare/bubbletea"
	"github.com/fwojciec/textcompare/clipboard"
	"github.com/fwojciec/textcompare/fs"
	"github.com/fwojciec/textcompare/lipgloss"
	"github.com/fwojciec/textcompare/textdiff"
)

// ErrDiffers is returned when the compared inputs are not identical.
var ErrDiffers = errors.New("inputs differ")

// App encapsulates the application logic for testing.
type App struct {
	Stdout   io.Writer
	Comparer textcompare.Comparer
	Viewer   textcompare.Viewer // nil prints reports to Stdout instead of paging
	Dirs     bool
}

// Run compares the two paths and reports the result. It returns
// ErrDiffers when any compared pair is not identical.
func (a *App) Run(ctx context.Context, originalPath, revisedPath string) error {
	if a.Dirs {
		return a.runDirs(ctx, originalPath, revisedPath)
	}

	report, err := fs.CompareFiles(a.Comparer, originalPath, revisedPath)
	if err != nil {
		return err
	}
	if report == "" {
		return nil
	}
	if err := a.show(ctx, report); err != nil {
		return err
	}
	return ErrDiffers
}

func (a *App) runDirs(ctx context.Context, originalDir, revisedDir string) error {
	results, err := fs.CompareDirs(ctx, a.Comparer, originalDir, revisedDir)
	if err != nil {
		return err
	}

	differs := false
	for _, res := range results {
		switch {
		case res.OnlyInOriginal:
			fmt.Fprintf(a.Stdout, "only in original: %s\n", res.Path)
			differs = true
		case res.OnlyInRevised:
			fmt.Fprintf(a.Stdout, "only in revised: %s\n", res.Path)
			differs = true
		case res.Report != "":
			fmt.Fprintf(a.Stdout, "=== %s ===\n", res.Path)
			if err := a.show(ctx, res.Report); err != nil {
				return err
			}
			differs = true
		}
	}

	if differs {
		return ErrDiffers
	}
	return nil
}

func (a *App) show(ctx context.Context, report string) error {
	if a.Viewer != nil {
		return a.Viewer.View(ctx, report)
	}
	_, err := fmt.Fprintln(a.Stdout, report)
	return err
}

func main() {
	pager := flag.Bool("pager", false, "view reports in an interactive pager")
	dirs := flag.Bool("dir", false, "compare two directory trees instead of two files")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: textcompare [-pager] [-dir] <original> <revised>")
		os.Exit(2)
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Stdout:   os.Stdout,
		Comparer: textdiff.New(),
		Dirs:     *dirs,
	}
	if *pager {
		opts := []bubbletea.ViewerOption{}
		if runtime.GOOS == "darwin" {
			opts = append(opts, bubbletea.WithClipboard(clipboard.NewPBCopy()))
		}
		app.Viewer = bubbletea.NewViewer(lipgloss.DefaultTheme(), opts...)
	}

	if err := app.Run(ctx, flag.Arg(0), flag.Arg(1)); err != nil {
		if errors.Is(err, ErrDiffers) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
