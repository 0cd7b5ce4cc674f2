package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/chessenc"
	"github.com/chessenc/boardarray"
	"github.com/chessenc/dataset"
	"github.com/chessenc/store"
)

var (
	pgnFlag     = flag.String("pgn", "", "PGN file with the games to encode")
	configFlag  = flag.String("config", "", "JSON config file, defaults are used when empty")
	modeFlag    = flag.String("mode", "matrix", "board layout when no config file is given: array, matrix or tensor")
	workersFlag = flag.Int("workers", 0, "number of encoding goroutines, 0 keeps the config value")
	maxFlag     = flag.Int("max", -1, "maximum number of examples, -1 keeps the config value")
	outFlag     = flag.String("out", "", "gob file to write the examples to")
	dbFlag      = flag.String("db", "", "badger directory to store the examples in")
)

func loadConfig() (chessenc.Config, error) {
	if *configFlag != "" {
		return chessenc.LoadConfig(*configFlag)
	}
	mode, err := boardarray.ParseMode(*modeFlag)
	if err != nil {
		return chessenc.Config{}, err
	}
	return chessenc.DefaultConfig(mode), nil
}

func main() {
	flag.Parse()
	if *pgnFlag == "" {
		log.Fatal("-pgn is required")
	}

	conf, err := loadConfig()
	if err != nil {
		log.Fatalf("error loading config: %s", err)
	}
	if *workersFlag > 0 {
		conf.Workers = *workersFlag
	}
	if *maxFlag >= 0 {
		conf.MaxExamples = *maxFlag
	}

	f, err := os.Open(*pgnFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := dataset.Encode(ctx, f, conf)
	if err != nil {
		log.Fatalf("error encoding %s: %s", *pgnFlag, err)
	}
	skipped := 0
	if res.Skipped != nil {
		skipped = res.Skipped.Len()
		for _, e := range res.Skipped.Errors {
			log.Printf("skipped %v", e)
		}
	}
	log.Printf("%s: %d examples in %s mode, %d skipped", conf.Name, len(res.Examples), conf.Mode, skipped)

	if *outFlag != "" {
		log.Printf("Save examples to %s", *outFlag)
		if err := chessenc.SaveExamples(*outFlag, res.Examples); err != nil {
			log.Fatalf("error saving examples: %s", err)
		}
	}

	if *dbFlag != "" {
		s, err := store.Open(*dbFlag)
		if err != nil {
			log.Fatal(err)
		}
		defer s.Close()

		run := store.Run{
			ID:       uuid.New(),
			Config:   conf,
			Source:   *pgnFlag,
			Examples: len(res.Examples),
			Skipped:  skipped,
		}
		if err := s.PutAll(run.ID, res.Examples); err != nil {
			log.Fatalf("error storing examples: %s", err)
		}
		if err := s.SaveRun(run); err != nil {
			log.Fatalf("error storing run: %s", err)
		}
		log.Printf("stored run %s in %s", run.ID, *dbFlag)
	}

	if len(res.Examples) < conf.NNConf.BatchSize {
		return
	}
	_, _, _, batches, err := chessenc.PrepareBatches(res.Examples, conf.NNConf, rand.New(rand.NewSource(conf.Seed)))
	if err != nil {
		log.Fatalf("error preparing batches: %s", err)
	}
	log.Printf("%d batches of %d, input size %d", batches, conf.NNConf.BatchSize, conf.NNConf.InputSize())
}
