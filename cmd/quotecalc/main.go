// Command quotecalc calculates produce quotes from CSV or Excel files.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/Simplici0/producequote/internal/config"
)

func main() {
	cfg := config.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(newCalcCmd(cfg.DefaultMethod, os.Stdout, os.Stderr), "quotes")
	commander.Register(newExportCmd(cfg.DefaultMethod, os.Stdout, os.Stderr), "quotes")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
