package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	xlog "github.com/stactools-packages/hwsd/internal/log"
)

var logLevelFlag = &cli.StringFlag{
	Name:  "log-level",
	Usage: "Log level (debug, info, warn, error)",
	Value: "info",
}

func main() {
	if err := rootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:  "stac",
		Usage: "Generate SpatioTemporal Asset Catalog (STAC) metadata",
		Flags: []cli.Flag{logLevelFlag},
		Commands: []*cli.Command{
			newHWSDCommand(),
		},
	}
}

func configureLogging(cmd *cli.Command) {
	xlog.Configure(xlog.Config{Level: cmd.String(logLevelFlag.Name)})
}
