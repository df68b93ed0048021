// This program provides preset experiment sweeps as a command line tool.
package main

import "github.com/availsim/dassim/app/tooling/sweep/cmd"

func main() {
	cmd.Execute()
}
