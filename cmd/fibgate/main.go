package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/fibgate/internal/interfaces/cli/listen"
	"github.com/orris-inc/fibgate/internal/interfaces/cli/server"
)

//	@title			fibgate API
//	@version		1.0
//	@description	Proxy for the First Iraqi Bank payment gateway.
//	@BasePath		/

func main() {
	rootCmd := &cobra.Command{
		Use:   "fibgate",
		Short: "fibgate - FIB payment gateway proxy",
		Long:  `fibgate exposes create, cancel, refund and status endpoints backed by the First Iraqi Bank payment gateway.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		listen.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
