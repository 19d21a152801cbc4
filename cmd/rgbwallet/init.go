package main

import (
	"context"
	"fmt"

	"code.vegaprotocol.io/rgbwallet/config"
	"code.vegaprotocol.io/rgbwallet/paths"

	"github.com/jessevdk/go-flags"
)

type InitCmd struct {
	HomeFlag

	Force bool `short:"f" long:"force" description:"Erase existing configuration at the specified path"`
	Help  bool `short:"h" long:"help" description:"Show this help message"`
}

func (cmd *InitCmd) Execute(_ []string) error {
	if cmd.Help {
		return &flags.Error{
			Type:    flags.ErrHelp,
			Message: "rgbwallet init subcommand help",
		}
	}

	cfgPath, err := paths.New(cmd.Home).CreateConfigPathFor(paths.WalletConfigFile)
	if err != nil {
		return fmt.Errorf("couldn't get path for %s: %w", paths.WalletConfigFile, err)
	}

	cfg := config.NewDefaultConfig()
	if err := config.Save(cfgPath, &cfg, cmd.Force); err != nil {
		return err
	}

	fmt.Printf("configuration written at %s\n", cfgPath)
	return nil
}

var initCmd InitCmd

func Init(_ context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{}

	_, err := parser.AddCommand("init", "Generate the configuration", "Generate the default configuration of the wallet server", &initCmd)
	return err
}
