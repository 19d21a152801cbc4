package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"code.vegaprotocol.io/rgbwallet/version"

	"github.com/jessevdk/go-flags"
)

type VersionCmd struct {
	Output string `long:"output" short:"o" default:"human" choice:"human" choice:"json" description:"Format of the output"`
	Help   bool   `short:"h" long:"help" description:"Show this help message"`
}

func (cmd *VersionCmd) Execute(_ []string) error {
	if cmd.Help {
		return &flags.Error{
			Type:    flags.ErrHelp,
			Message: "rgbwallet version subcommand help",
		}
	}

	info := version.GetInfo()
	if cmd.Output == "json" {
		return json.NewEncoder(os.Stdout).Encode(info)
	}
	fmt.Printf("RGB wallet %s (%s)\n", info.Version, info.Hash)
	return nil
}

var versionCmd VersionCmd

func Version(_ context.Context, parser *flags.Parser) error {
	versionCmd = VersionCmd{}

	_, err := parser.AddCommand("version", "Show version info", "Show version info", &versionCmd)
	return err
}
