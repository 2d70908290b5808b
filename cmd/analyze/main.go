package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/nnaakkaaii/numbermerge/internal/persistence"
	"github.com/nnaakkaaii/numbermerge/internal/usecase"
)

func main() {
	file := flag.String("file", persistence.DefaultPath, "save file to analyze")
	depth := flag.Int("depth", 4, "search depth")
	useParallel := flag.Bool("parallel", false, "evaluate top-level moves in parallel")
	flag.Parse()

	state, err := persistence.NewStore(*file).Load()
	if err != nil {
		log.Fatal(err)
	}

	config := usecase.AnalyzeConfig{
		MaxDepth:    *depth,
		UseParallel: *useParallel,
		Renderer:    usecase.NewRenderer(term.IsTerminal(int(os.Stdout.Fd()))),
	}
	if _, _, err := usecase.Analyze(os.Stdout, state, config); err != nil {
		log.Fatal(err)
	}
}
