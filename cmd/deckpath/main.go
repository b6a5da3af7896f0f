package main

import (
	"os"

	"github.com/woozymasta/deckpath/internal/config"
	"github.com/woozymasta/deckpath/internal/logger"
	"github.com/woozymasta/deckpath/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to datasets configuration file. Built-in Tachikawa datasets if empty"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	log.Debug().
		Int("datasets", len(cfg.Datasets)).
		Msg("Starting conversion")

	written, err := processor.Run(cfg.Datasets)
	if err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}

	log.Info().
		Strs("outputs", written).
		Msg("Conversion finished successfully")
}
