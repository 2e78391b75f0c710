package main

import (
	"os"

	"cosmossdk.io/log"
	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/openalpha/fundchain/app"
	"github.com/openalpha/fundchain/cmd/fundd/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := svrcmd.Execute(rootCmd, "FUNDD", app.DefaultNodeHome); err != nil {
		log.NewLogger(os.Stderr).Error("failure when running fundd", "err", err)
		os.Exit(1)
	}
}
