package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/associahedron"
	"github.com/osuushi/associahedron/advanced"
	"github.com/osuushi/associahedron/dbg"
	"github.com/pkg/errors"
)

const svgSize = 480

type showOptions struct {
	pngPath string
	imgcat  bool
	svgPath string
}

func runEnumerate(out io.Writer, cache *advanced.CodewordCache, n int) error {
	words, err := cache.Get(n)
	if err != nil {
		return err
	}
	var previous advanced.Codeword
	var previousEdges []advanced.Edge
	for i, w := range words {
		edges, err := associahedron.CodewordEdges(w, n)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%4d  %s", i, dbg.Codeword(w, nil))
		if previous != nil {
			removed, added := advanced.Flip(previousEdges, edges)
			line = fmt.Sprintf("%4d  %s  %s -> %s", i, dbg.Codeword(w, w.Changed(previous)),
				dbg.Removed(removed), dbg.Edges(added, added))
		}
		fmt.Fprintln(out, line)
		previous, previousEdges = w, edges
	}
	return nil
}

func runShow(out io.Writer, cache *advanced.CodewordCache, n int, input string, opts showOptions) error {
	if cache.MaxN() > 0 && n > cache.MaxN() {
		return errors.Wrapf(advanced.ErrTooLarge, "codeword length %d exceeds %d", n, cache.MaxN())
	}
	w, err := associahedron.ParseCodeword(input, n)
	if err != nil {
		return err
	}
	tri, links, err := associahedron.Triangulate(w)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "codeword:  %s (%d-gon)\n", dbg.Codeword(w, nil), len(tri.Boundary))
	fmt.Fprintf(out, "diagonals: %s\n", dbg.Edges(tri.Diagonals, nil))
	triangles := make([]string, len(tri.Triangles))
	for i, t := range tri.Triangles {
		triangles[i] = fmt.Sprintf("{%d,%d,%d}", t[0], t[1], t[2])
	}
	fmt.Fprintf(out, "triangles: %s\n", strings.Join(triangles, " "))
	fmt.Fprintln(out, "tree:")
	for _, link := range links {
		fmt.Fprintf(out, "%s%s -> %s\n", strings.Repeat("  ", link.Depth), link.From, link.To)
	}

	if opts.pngPath == "" && opts.imgcat {
		opts.pngPath = filepath.Join(os.TempDir(), "associahedron.png")
	}
	if opts.pngPath != "" {
		if err := dbg.DrawTriangulation(tri, svgSize/2, opts.pngPath); err != nil {
			return err
		}
		if opts.imgcat {
			dbg.Cat(opts.pngPath)
		}
	}
	if opts.svgPath != "" {
		if err := saveSVG(opts.svgPath, tri); err != nil {
			return err
		}
	}
	return nil
}

func runWalk(out io.Writer, cache *advanced.CodewordCache, n, from, steps int) error {
	words, err := cache.Get(n)
	if err != nil {
		return err
	}
	walk, err := newWalker(words, from)
	if err != nil {
		return err
	}
	for i := 0; !walk.done() && (steps == 0 || i < steps); i++ {
		f, err := walk.next()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%4d  %s  %s", f.Index, dbg.Codeword(f.Codeword, f.Changed), dbg.Edges(f.Edges, f.Added))
		if len(f.Removed) > 0 {
			fmt.Fprintf(out, "  flipped %s", dbg.Removed(f.Removed))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runStack(out io.Writer, cache *advanced.CodewordCache, n, d, height int) error {
	words, err := cache.Get(n)
	if err != nil {
		return err
	}
	if d < 1 || d >= n {
		return errors.Errorf("stack dimension %d out of range 1..%d", d, n-1)
	}
	if height > 0 {
		var selected []advanced.Codeword
		for _, w := range words {
			if advanced.InStack(w, d, height) {
				selected = append(selected, w)
			}
		}
		words = selected
	}
	for _, stack := range advanced.Stacks(words, d) {
		fmt.Fprintf(out, "suffix %s height %d\n", stack.Suffix, stack.Height)
		for _, w := range stack.Words {
			fmt.Fprintf(out, "  %s\n", dbg.Codeword(w, []int{d}))
		}
	}
	return nil
}
