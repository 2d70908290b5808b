package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
	"github.com/nnaakkaaii/numbermerge/internal/usecase"
)

func main() {
	defaults := domain.DefaultConfig()
	size := flag.Int("size", defaults.Size, "board size")
	goal := flag.Int("goal", defaults.Goal, "tile value that wins the game")
	seed := flag.Int64("seed", 0, "random seed (0 = current time)")
	depth := flag.Int("depth", 3, "search depth")
	delay := flag.Int("delay", 100, "delay between moves (ms)")
	maxMoves := flag.Int("max-moves", 0, "stop after this many moves (0 = no limit)")
	stopOnWin := flag.Bool("stop-on-win", false, "stop when the goal tile is reached")
	useParallel := flag.Bool("parallel", false, "evaluate top-level moves in parallel")
	quiet := flag.Bool("quiet", false, "suppress output")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	game, err := domain.NewGame(domain.Config{Size: *size, Goal: *goal, InitialTiles: defaults.InitialTiles}, rng)
	if err != nil {
		log.Fatal(err)
	}

	config := usecase.DefaultAutoPlayConfig()
	config.MaxDepth = *depth
	config.Delay = time.Duration(*delay) * time.Millisecond
	config.MaxMoves = *maxMoves
	config.StopOnWin = *stopOnWin
	config.UseParallel = *useParallel
	config.Verbose = !*quiet
	config.Renderer = usecase.NewRenderer(term.IsTerminal(int(os.Stdout.Fd())))

	if _, err := usecase.AutoPlay(os.Stdout, game, config); err != nil {
		log.Fatal(err)
	}
	log.Printf("seed %d", *seed)
}
