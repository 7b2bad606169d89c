package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

var server srv

func main() {
	app := cli.NewApp()
	app.Name = "fanpassport"
	app.Usage = "Club experience backend"
	app.Action = cli.ShowAppHelp
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the configuration file",
			Value: "config.toml",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Category:    "Api",
			Description: `Serves the club, experience, progress and reward apis.`,
		},
		{
			Action:    server.seed,
			Name:      "seed",
			Usage:     "Load the catalog file into the database",
			ArgsUsage: "<catalogPath>",
			Category:  "Tool",
			Description: `Reads a json catalog of clubs and experiences and upserts it
into the authoritative database.`,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
