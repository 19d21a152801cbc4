package main

import (
	"code.vegaprotocol.io/rgbwallet/paths"
)

type HomeFlag struct {
	Home string `long:"home" description:"Path to the custom home for rgbwallet"`
}

func (f HomeFlag) configPath() string {
	return paths.New(f.Home).ConfigPathFor(paths.WalletConfigFile)
}
