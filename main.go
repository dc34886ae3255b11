package main

import "github.com/drivergigspro/demandmap/cmd"

func main() {
	cmd.Execute()
}
