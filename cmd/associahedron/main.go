package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/osuushi/associahedron/advanced"
	"github.com/osuushi/associahedron/dbg"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line explorer for polygon triangulations. Codewords name the
// triangulations of the convex (n+2)-gon; the commands list them in the order
// they appear along the associahedron, draw single ones, and step along the
// path one flip at a time.

var (
	app     = kingpin.New("associahedron", "Explore the triangulations of a convex polygon.")
	maxN    = app.Flag("max-n", "Largest codeword length to accept (0 for no limit).").Default("12").Int()
	verbose = app.Flag("verbose", "Log debug diagnostics to stderr.").Short('v').Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Bool()

	enumerateCmd = app.Command("enumerate", "List every codeword of length n in path order.")
	enumerateN   = enumerateCmd.Arg("n", "Codeword length; the polygon has n+2 sides.").Required().Int()

	showCmd      = app.Command("show", "Decode one codeword and print its triangulation.")
	showN        = showCmd.Arg("n", "Codeword length; the polygon has n+2 sides.").Required().Int()
	showCodeword = showCmd.Arg("codeword", "Comma separated entries, e.g. 1,0,2,0.").Required().String()
	showPNG      = showCmd.Flag("png", "Write a PNG drawing to this file.").String()
	showImgcat   = showCmd.Flag("imgcat", "Print the PNG drawing in the terminal (iTerm only).").Bool()
	showSVG      = showCmd.Flag("svg", "Write an SVG drawing to this file.").String()

	walkCmd   = app.Command("walk", "Step along the associahedron one flip at a time.")
	walkN     = walkCmd.Arg("n", "Codeword length; the polygon has n+2 sides.").Required().Int()
	walkFrom  = walkCmd.Flag("from", "Index of the first codeword.").Default("0").Int()
	walkSteps = walkCmd.Flag("steps", "Number of codewords to visit (0 for all).").Default("0").Int()

	stackCmd    = app.Command("stack", "Group the codewords of length n into stacks of dimension d.")
	stackN      = stackCmd.Arg("n", "Codeword length; the polygon has n+2 sides.").Required().Int()
	stackD      = stackCmd.Arg("d", "Stack dimension, from 1 to n-1.").Required().Int()
	stackHeight = stackCmd.Flag("height", "Only show stacks of this height (0 for all).").Default("0").Int()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *noColor {
		dbg.SetColors(false)
	}
	cache := advanced.NewCodewordCache(*maxN)

	var err error
	switch command {
	case enumerateCmd.FullCommand():
		err = runEnumerate(os.Stdout, cache, *enumerateN)
	case showCmd.FullCommand():
		err = runShow(os.Stdout, cache, *showN, *showCodeword, showOptions{
			pngPath: *showPNG,
			imgcat:  *showImgcat,
			svgPath: *showSVG,
		})
	case walkCmd.FullCommand():
		err = runWalk(os.Stdout, cache, *walkN, *walkFrom, *walkSteps)
	case stackCmd.FullCommand():
		err = runStack(os.Stdout, cache, *stackN, *stackD, *stackHeight)
	}
	if err != nil {
		log.Fatal(err)
	}
}
