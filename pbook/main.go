// Command pbook keeps the books of a two partner reselling business.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/etnz/partnership/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// a .env file in the working directory may hold the PBOOK_* defaults.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, cannot load .env file: %v", err)
	}

	completion().Complete("pbook")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	known := map[string]bool{"help": true, "flags": true, "commands": true}
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		known[c.Name()] = true
	}

	flag.Parse()

	// unknown subcommands are delegated to pbook-<name> extensions.
	if sub := flag.Arg(0); sub != "" && !known[sub] {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
