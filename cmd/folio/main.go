package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, the environment may already be set
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range analyticsCommands {
		commander.Register(c, "analytics")
	}
	for _, c := range dataCommands {
		commander.Register(c, "data")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
