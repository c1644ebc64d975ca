package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rat"
	app.Usage = "Exact rational arithmetic on fractions kept in lowest terms."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   config.OutputFormatText,
			Usage:   "the output format, text, json or msgpack",
		},
	}
	app.Before = setupCmd
	app.EnableBashCompletion = true

	valueFlag := &cli.StringFlag{
		Name:     "value",
		Usage:    "the rational `N/D`",
		Required: true,
	}
	operandFlags := []cli.Flag{
		&cli.StringFlag{
			Name:     "x",
			Usage:    "the left operand `N/D`",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "y",
			Usage:    "the right operand `N/D`",
			Required: true,
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:   "reduce",
			Usage:  "Print a rational in lowest terms",
			Action: reduceCmd,
			Flags:  []cli.Flag{valueFlag},
		},
		{
			Name:   "reciprocal",
			Usage:  "Print the reciprocal of a rational",
			Action: reciprocalCmd,
			Flags:  []cli.Flag{valueFlag},
		},
		{
			Name:   "add",
			Usage:  "Print x + y",
			Action: arithmeticCmd,
			Flags:  operandFlags,
		},
		{
			Name:   "sub",
			Usage:  "Print x - y",
			Action: arithmeticCmd,
			Flags:  operandFlags,
		},
		{
			Name:   "mul",
			Usage:  "Print x * y",
			Action: arithmeticCmd,
			Flags:  operandFlags,
		},
		{
			Name:   "div",
			Usage:  "Print x / y",
			Action: arithmeticCmd,
			Flags:  operandFlags,
		},
		{
			Name:   "compare",
			Usage:  "Print -1, 0 or 1 as x is less than, equal to or greater than y",
			Action: compareCmd,
			Flags:  operandFlags,
		},
		{
			Name:      "sort",
			Usage:     "Print the arguments in ascending order",
			ArgsUsage: "N/D...",
			Action:    sortCmd,
		},
		{
			Name:   "encode",
			Usage:  "Print the msgpack encoding of a rational as hex",
			Action: encodeCmd,
			Flags:  []cli.Flag{valueFlag},
		},
		{
			Name:   "decode",
			Usage:  "Decode a msgpack encoded rational",
			Action: decodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "raw",
					Usage:    "the msgpack `HEX`",
					Required: true,
				},
			},
		},
	}
	return app
}
