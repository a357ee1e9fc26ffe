package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dashboard/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine, the environment is used as is.
	_ = godotenv.Load()

	cmd.Completion().Complete("dash")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
