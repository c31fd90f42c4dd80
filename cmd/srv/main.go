package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	server := &srv{}

	app := &cli.App{
		Name:  "backend",
		Usage: "round host selection service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the TOML configuration file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "api",
				Usage:  "start the api server",
				Action: server.startApi,
			},
			{
				Name:  "migrate",
				Usage: "migrate the database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "version",
						Usage: "run one migrator version instead of every pending one",
					},
				},
				Action: server.startMigrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
