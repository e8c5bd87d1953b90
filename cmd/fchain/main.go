package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghetzel/cli"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/go-stockutil/stringutil"
	funcjs "github.com/hasbyte1/go-funcjs"
	"github.com/hasbyte1/go-funcjs/internal/pipeline"
)

func main() {
	app := cli.NewApp()
	app.Name = `fchain`
	app.Usage = `Run a chain of collection operations over a JSON or YAML document`
	app.ArgsUsage = `STEP [STEP ...]`
	app.Version = `0.1.0`

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   `log-level, L`,
			Usage:  `Level of log output verbosity`,
			Value:  `info`,
			EnvVar: `FCHAIN_LOG_LEVEL`,
		},
		cli.StringFlag{
			Name:   `pipeline, p`,
			Usage:  `A YAML file listing the steps to run before any given on the command line`,
			EnvVar: `FCHAIN_PIPELINE`,
		},
		cli.StringFlag{
			Name:  `input, i`,
			Usage: `The document to read ("-" reads standard input)`,
			Value: `-`,
		},
		cli.StringSliceFlag{
			Name:  `alias, a`,
			Usage: `Register an extra name for an operation (formatted as "NAME=TARGET"; e.g. "where=filter")`,
		},
		cli.BoolFlag{
			Name:  `compact, c`,
			Usage: `Write the result as a single line of JSON`,
		},
		cli.BoolFlag{
			Name:  `list, l`,
			Usage: `List every available operation, then exit.`,
		},
	}

	app.Before = func(c *cli.Context) error {
		log.SetLevelString(c.String(`log-level`))
		return nil
	}

	app.Action = func(c *cli.Context) {
		if c.Bool(`list`) {
			fmt.Println(strings.Join(funcjs.Registry().Names(), "\n"))
			return
		}

		cfg := pipeline.DefaultConfig()
		cfg.File = c.String(`pipeline`)
		cfg.Steps = c.Args()

		if c.Bool(`compact`) {
			cfg.Indent = ``
		}

		for _, pair := range c.StringSlice(`alias`) {
			alias, target := stringutil.SplitPair(pair, `=`)
			if alias == `` || target == `` {
				log.Fatalf("invalid alias %q: expected NAME=TARGET", pair)
			}
			cfg.Aliases[alias] = target
		}

		p, err := pipeline.Load(cfg)
		log.FatalIf(err)

		data, err := readInput(c.String(`input`))
		log.FatalIf(err)

		input, err := pipeline.Decode(data)
		log.FatalIf(err)

		result, err := p.Run(funcjs.Registry(), input)
		log.FatalIf(err)

		out, err := pipeline.Encode(result, cfg.Indent)
		log.FatalIf(err)

		fmt.Println(string(out))
	}

	app.Run(os.Args)
}

func readInput(name string) ([]byte, error) {
	if name == `` || name == `-` {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
