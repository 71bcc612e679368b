// Command sparsix operates on sparse integer matrices stored in the
// plain-text tuple format: load one or two files, run an operation, and
// write the encoded result.
//
// Usage:
//
//	sparsix info a.txt
//	sparsix add a.txt b.txt --out sum.txt
//	sparsix mul a.txt b.txt
//	sparsix all a.txt b.txt --dir results
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"
)

const appVersion = "0.1.0"

var app = cli.NewApp()

func init() {
	app.Name = "sparsix"
	app.Version = appVersion
	app.Usage = "operate on sparse integer matrices stored in tuple text files"
	app.Commands = []cli.Command{
		infoCommand,
		addCommand,
		subCommand,
		mulCommand,
		transposeCommand,
		scaleCommand,
		allCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
