// wallhang-cli plans picture walls from the command line.
//
// Build:
//   go build -o wallhang-cli ./cmd/wallhang-cli
//
// Usage:
//   wallhang-cli place hall.wallhang 50x70 30x90:landscape:Dunes
//   wallhang-cli check hall.wallhang
//   wallhang-cli export hall.wallhang -f pdf,xlsx

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/piwi3910/WallHang/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
