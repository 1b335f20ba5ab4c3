package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/ATenderholt/rainbow-mailer/internal/clients"
	"github.com/ATenderholt/rainbow-mailer/internal/logging"
	"github.com/ATenderholt/rainbow-mailer/internal/replay"
	"go.uber.org/zap"
	"os"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger().Named("main")
}

func main() {
	opts, output, err := replay.FromFlags(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(output)
		os.Exit(2)
	} else if err != nil {
		fmt.Println("got error:", err)
		fmt.Println("output:\n", output)
		os.Exit(1)
	}

	logging.SetDebug(opts.IsDebug)

	if err := run(context.Background(), opts); err != nil {
		logger.Errorf("Replay failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *replay.Options) error {
	payload, err := replay.Payload(opts)
	if err != nil {
		return err
	}

	awsCfg, err := clients.LoadAwsConfig(ctx, opts.Region)
	if err != nil {
		return err
	}

	replayer := replay.NewReplayer(clients.NewLambdaClient(awsCfg, opts.LambdaEndpoint))
	result, err := replayer.Replay(ctx, opts.Function, payload)
	if tail := replay.Tail(result); tail != "" {
		fmt.Println(tail)
	}

	return err
}
