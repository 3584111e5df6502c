// Command define looks up a word in a local dictionary database and prints
// its definitions grouped by language and part of speech, with wiki template
// markup in definition text expanded to readable prose.
//
// Flags:
//
//	-r, -raw       don't expand wiki templates
//	-l, -language  only print this language
//	-d, -database  database file path
//	-p, -partial   search for words matching any part
//	-version       print version and exit
//
// Multiple positional arguments are joined with spaces into one search term.
// Exit codes: 0 = success (including no results), 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/define/internal/adapter/sqlite"
	"github.com/heartmarshall/define/internal/adapter/sqlite/word"
	"github.com/heartmarshall/define/internal/app"
	"github.com/heartmarshall/define/internal/config"
	"github.com/heartmarshall/define/internal/render"
	"github.com/heartmarshall/define/internal/service/lookup"
)

const lookupTimeout = 30 * time.Second

func main() {
	var (
		raw         bool
		language    string
		dbPath      string
		partial     bool
		showVersion bool
	)

	flag.BoolVar(&raw, "r", false, "don't expand wiki templates")
	flag.BoolVar(&raw, "raw", false, "don't expand wiki templates")
	flag.StringVar(&language, "l", "", "only print this language")
	flag.StringVar(&language, "language", "", "only print this language")
	flag.StringVar(&dbPath, "d", "", "database file path (default: "+config.DefaultDatabasePath()+")")
	flag.StringVar(&dbPath, "database", "", "database file path")
	flag.BoolVar(&partial, "p", false, "search database for words matching any part")
	flag.BoolVar(&partial, "partial", false, "search database for words matching any part")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Println(app.BuildVersion())
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	svc := lookup.New(word.New(db), logger)

	result, err := svc.Lookup(ctx, lookup.Input{
		Term:     strings.Join(flag.Args(), " "),
		Language: language,
		Partial:  partial,
		Raw:      raw,
	})
	if err != nil {
		logger.Error("lookup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printer := render.New(os.Stdout, cfg.Output.Width, cfg.Output.Color)
	if result.Empty() {
		printer.PrintNoResults()
		return
	}
	printer.Print(result.Words)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] WORD...\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}
