package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/vitrix/internal/cli"
)

var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vitrix:", err)
		os.Exit(cli.ExitCode(err))
	}
}
