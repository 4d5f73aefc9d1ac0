package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/kk-code-lab/mdview/internal/app"
)

func printHelp() {
	fmt.Print(`mdview - Terminal markdown viewer

USAGE:
    mdview [OPTIONS] [FILE]

With no FILE, a built-in sample document is shown.

OPTIONS:
    -h, --help    Show this help message and exit

KEYS:
    j/k, arrows   Scroll one line
    PgUp/PgDn     Scroll one page
    g/G           Jump to top / bottom
    w             Toggle line wrapping
    r             Reload the file
    q, Esc        Quit
`)
}

func main() {
	// UTF-8 fallback so box-drawing table borders and bullets survive
	// terminals with unhelpful locale settings.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	path := ""
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		default:
			if path != "" {
				fmt.Fprintf(os.Stderr, "Error: only one file may be given\n")
				os.Exit(2)
			}
			path = arg
		}
	}

	app, err := apppkg.NewApplication(path, sampleDocument)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing viewer: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
