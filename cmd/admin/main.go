package main

import (
	"os"

	"hotel-backend/cmd/admin/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.DefaultOptions()).Execute(); err != nil {
		os.Exit(1)
	}
}
