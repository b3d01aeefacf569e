package main

import (
	"flag"
	"log"
	"os"

	"github.com/zintix-labs/gleamgrid"
	"github.com/zintix-labs/gleamgrid/configs"
	"github.com/zintix-labs/gleamgrid/logger"
	"github.com/zintix-labs/gleamgrid/spec"
	"github.com/zintix-labs/gleamgrid/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cfg *config = new(config)

type config struct {
	config    string
	worker    int
	games     int
	moves     int
	minClus   int
	seed      int64
	format    string
	pprofmode string
}

func bindVar() {
	flag.StringVar(&cfg.config, "config", "", "game setting file (yaml/json); empty uses embedded default")
	flag.IntVar(&cfg.worker, "worker", 1, "number of workers")
	flag.IntVar(&cfg.games, "games", 100000, "number of games")
	flag.IntVar(&cfg.moves, "moves", 50, "max clears per game")
	flag.IntVar(&cfg.minClus, "min", 0, "override min cluster size (0 keeps config)")
	flag.Int64Var(&cfg.seed, "seed", -1, "int64 seed for the simulation; < 0 picks one at random")
	flag.StringVar(&cfg.format, "o", "table", "report format: table, json, yaml")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")

	flag.Parse()
}

func executeSimulator() {
	cfg.valid()

	gs, err := configs.Load(cfg.config)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.minClus != 0 {
		gs.MinCluster = cfg.minClus
		if gs.MinCluster < 2 || gs.MinCluster > spec.Size {
			log.Fatal("value err : min must be in [2,56]")
		}
	}
	mode, ok := logger.ParseMode(gs.LogMode)
	if !ok {
		mode = logger.ModeDev
	}
	lg := logger.NewDefaultLogger(mode)

	rep, err := stats.NewRender(cfg.format)
	if err != nil {
		log.Fatal(err)
	}
	s, err := gleamgrid.NewSimulator(gs, lg, cfg.seed)
	if err != nil {
		log.Fatal(err)
	}

	green := "\033[1;32m"
	reset := "\033[0m"
	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "%s[WORKERS:%d] [GAME:%s] [GAMES:%d] [MOVES:%d] [MIN:%d] [SEED:%d]%s\n",
		green, cfg.worker, gs.GameName, cfg.games, cfg.moves, gs.MinCluster, s.Seed(), reset)

	st, used, err := s.Sim(cfg.games, cfg.moves, cfg.worker, true)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.format == "table" || cfg.format == "" {
		st.StdOut(used)
		p.Print(st.DistTable())
		return
	}
	if err := st.WriteWith(os.Stdout, rep); err != nil {
		log.Fatal(err)
	}
}

func (cfg *config) valid() {
	p := message.NewPrinter(language.English)

	if cfg.worker < 1 {
		log.Fatal("value err : workers must > 0")
	}
	if cfg.games < 1 {
		log.Fatal("value err : games must > 0")
	}
	if cfg.moves < 1 {
		log.Fatal("value err : moves must > 0")
	}
	// 單局消除次數上限；超過後盤面統計已趨穩定
	if cfg.moves > 10000 {
		p.Printf("too much moves for each game : %d resized to 10k\n", cfg.moves)
		cfg.moves = 10000
	}
}
