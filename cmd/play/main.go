package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
	"github.com/nnaakkaaii/numbermerge/internal/persistence"
	"github.com/nnaakkaaii/numbermerge/internal/usecase"
)

func main() {
	defaults := domain.DefaultConfig()
	size := flag.Int("size", defaults.Size, "board size")
	goal := flag.Int("goal", defaults.Goal, "tile value that wins the game")
	seed := flag.Int64("seed", 0, "random seed (0 = current time)")
	savePath := flag.String("save", persistence.DefaultPath, "save file path (empty disables saving)")
	resume := flag.Bool("resume", false, "resume from the save file if it exists")
	colorMode := flag.String("color", "auto", "colored tiles: auto, always or never")
	locales := flag.String("locales", "", "gettext locale directory")
	lang := flag.String("lang", "en_US", "message language")
	flag.Parse()

	if *locales != "" {
		gotext.Configure(*locales, *lang, "default")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	config := usecase.DefaultPlayConfig()
	if *savePath != "" {
		config.Store = persistence.NewStore(*savePath)
	}

	fd := int(os.Stdout.Fd())
	switch *colorMode {
	case "always":
		config.Renderer = usecase.NewRenderer(true)
	case "never":
		config.Renderer = usecase.NewRenderer(false)
	default:
		config.Renderer = usecase.NewRenderer(term.IsTerminal(fd))
	}

	game, err := newGame(domain.Config{Size: *size, Goal: *goal, InitialTiles: defaults.InitialTiles}, rng, config.Store, *resume)
	if err != nil {
		log.Fatal(err)
	}

	if width, _, err := term.GetSize(fd); err == nil && width < config.Renderer.Width(game.Grid()) {
		log.Printf("terminal is %d columns wide, the board may wrap", width)
	}

	if err := usecase.PlayGame(os.Stdin, os.Stdout, game, config); err != nil {
		log.Fatal(err)
	}
}

func newGame(cfg domain.Config, rng *rand.Rand, store *persistence.Store, resume bool) (*domain.Game, error) {
	if resume && store != nil {
		state, err := store.Load()
		switch {
		case err == nil:
			return domain.Restore(state, rng)
		case !errors.Is(err, persistence.ErrNoSave):
			return nil, err
		}
		log.Printf("no save at %s, starting a new game", store.Path())
	}
	return domain.NewGame(cfg, rng)
}
