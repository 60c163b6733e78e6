package main

import "github.com/mycoinlabs/mycoin/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
