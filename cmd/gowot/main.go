// Command gowot inspects W3C WoT Thing Descriptions and Thing Models.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reoring/gowot/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
