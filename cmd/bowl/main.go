package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/jose-valero/bowling-bot/internal/adapters/bowling"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(0)

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "bowl"
	app.Usage = "create, inspect and roll on games of the bowling scoring service"
	app.Version = "0.1.0"
	app.Writer = out

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "endpoint, e",
			Usage:  "base URL of the game collection, e.g. http://localhost:5000/api/game",
			EnvVar: "BOWLING_API_URL",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create a game for the given players (in turn order)",
			ArgsUsage: "<player> [player...]",
			Action: func(c *cli.Context) error {
				bc, err := client(c)
				if err != nil {
					return err
				}
				g, err := bc.CreateGame(context.Background(), []string(c.Args()))
				if err != nil {
					return explain(err)
				}
				return printJSON(out, g)
			},
		},
		{
			Name:      "get",
			Usage:     "fetch a game",
			ArgsUsage: "<game-id>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return cli.NewExitError("usage: bowl get <game-id>", 2)
				}
				bc, err := client(c)
				if err != nil {
					return err
				}
				g, err := bc.GetGame(context.Background(), c.Args().First())
				if err != nil {
					return explain(err)
				}
				return printJSON(out, g)
			},
		},
		{
			Name:      "roll",
			Usage:     "submit a roll",
			ArgsUsage: "<game-id>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "player, p", Usage: "player id"},
				cli.IntFlag{Name: "pins", Usage: "pins knocked down"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 || c.String("player") == "" || !c.IsSet("pins") {
					return cli.NewExitError("usage: bowl roll --player <id> --pins <n> <game-id>", 2)
				}
				bc, err := client(c)
				if err != nil {
					return err
				}
				r, err := bc.RollBall(context.Background(), c.Args().First(), c.String("player"), c.Int("pins"))
				if err != nil {
					return explain(err)
				}
				if r == nil {
					fmt.Fprintln(out, "roll accepted (no result body)")
					return nil
				}
				return printJSON(out, r)
			},
		},
	}
	return app
}

func client(c *cli.Context) (*bowling.Client, error) {
	endpoint := strings.TrimSpace(c.GlobalString("endpoint"))
	if endpoint == "" {
		return nil, cli.NewExitError("missing --endpoint (or BOWLING_API_URL)", 2)
	}
	return bowling.New(endpoint), nil
}

// explain: los errores del backend salen con su status y body tal cual.
func explain(err error) error {
	var he *bowling.HTTPError
	if errors.As(err, &he) {
		return cli.NewExitError(fmt.Sprintf("HTTP %d: %s", he.Status, he.Body), 1)
	}
	return cli.NewExitError(err.Error(), 1)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
