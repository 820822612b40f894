// Command regmap generates Go register maps from IP-XACT descriptions and
// inspects register values of the CTU CAN FD core.
package main

import (
	"fmt"
	"os"

	"omibyte.io/ctucanfd/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "regmap:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
