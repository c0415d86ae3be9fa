// Command populatedb fills the catalog database with sample authors,
// genres, books and copies.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"

	"github.com/snnyvrz/locallibrary/internal/config"
	"github.com/snnyvrz/locallibrary/internal/db"
	"github.com/snnyvrz/locallibrary/internal/repository"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: populatedb [-quiet]\n\n")
	fmt.Fprintf(os.Stderr, "the target database is taken from the DB_* environment variables.\n")
	flag.PrintDefaults()
}

// newProgress returns a bar that completes after total steps.
func newProgress(out io.Writer, total int) (*mpb.Progress, *mpb.Bar) {
	p := mpb.New(
		mpb.WithOutput(out),
	)
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(decor.Name("populating catalog")),
		mpb.AppendDecorators(decor.Percentage()),
	)
	return p, bar
}

func exit(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		exit("invalid configuration", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx := context.Background()

	database, err := db.ConnectWithRetry(ctx, cfg, log)
	if err != nil {
		exit("unable to connect", err)
	}
	defer db.Close(database)

	if err := repository.Migrate(database); err != nil {
		exit("unable to migrate", err)
	}

	var out io.Writer = os.Stdout
	if *quiet {
		out = io.Discard
	}

	p, bar := newProgress(out, sampleSize())

	s := &seeder{stores: repository.NewStores(database), step: func() { bar.Increment() }}
	if err := s.run(ctx); err != nil {
		// the bar never completes, so Wait would block
		exit("unable to populate catalog", err)
	}

	p.Wait()

	log.Info("catalog populated",
		"authors", len(s.authors),
		"genres", len(s.genres),
		"books", len(s.books),
		"copies", len(sampleCopies),
	)
}
