// Package cmd implements the CLI application to manage an inventory book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Commands lists every subcommand of the skr tool.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&updateCmd{},
	&rmCmd{},
	&itemsCmd{},
	&addCategoryCmd{},
	&rmCategoryCmd{},
	&categoriesCmd{},
	&withdrawCmd{},
	&historyCmd{},
	&reportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "", "Path to the inventory store file (defaults to $SKR_STORE or stockroom.db)")

// appConfig holds the environment-provided defaults, overridable by flags.
type appConfig struct {
	Store    string `envconfig:"STORE" default:"stockroom.db"`
	Currency string `envconfig:"CURRENCY" default:"USD"`
}

// Config reads the application configuration from a .env file (when
// present) and the SKR_* environment.
func Config() (appConfig, error) {
	// A missing .env file is fine, the environment still applies.
	_ = godotenv.Load()

	var cfg appConfig
	if err := envconfig.Process("skr", &cfg); err != nil {
		return cfg, fmt.Errorf("could not read configuration from environment: %w", err)
	}
	if *storeFile != "" {
		cfg.Store = *storeFile
	}
	return cfg, nil
}

// Logger returns the application logger, writing human-readable lines to
// stderr so stdout stays clean for the rendered reports.
func Logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// OpenBook opens the configured store and builds the book on top of it.
// The returned close function must be called once the command is done.
func OpenBook() (*stockroom.Book, func() error, error) {
	cfg, err := Config()
	if err != nil {
		return nil, nil, err
	}
	store, err := stockroom.OpenSQLiteStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}
	return stockroom.NewBook(store, cfg.Currency, Logger()), store.Close, nil
}
