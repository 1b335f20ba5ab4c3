package replay

import (
	"bytes"
	"flag"
	"github.com/ATenderholt/rainbow-mailer/internal/settings"
)

const (
	DefaultBucket = "rainbow-mailer-test"
	DefaultKey    = "replay/sample.txt"
	DefaultSize   = 1024
)

type Options struct {
	Function       string
	EventPath      string
	Region         string
	LambdaEndpoint string
	Bucket         string
	Key            string
	Size           int64
	IsDebug        bool
}

func FromFlags(name string, args []string) (*Options, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var opts Options
	flags.StringVar(&opts.Function, "function", "", "Name or ARN of the function to invoke")
	flags.StringVar(&opts.EventPath, "event", "", "Path to an S3 event JSON file; a sample event is generated when empty")
	flags.StringVar(&opts.Region, "region", settings.DefaultRegion, "AWS region of the function")
	flags.StringVar(&opts.LambdaEndpoint, "lambda-endpoint", "", "Endpoint URL for a local Lambda emulator")
	flags.StringVar(&opts.Bucket, "bucket", DefaultBucket, "Bucket name for the sample event")
	flags.StringVar(&opts.Key, "key", DefaultKey, "Object key for the sample event")
	flags.Int64Var(&opts.Size, "size", DefaultSize, "Object size for the sample event")
	flags.BoolVar(&opts.IsDebug, "debug", false, "Enable debug logging")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	if opts.Function == "" {
		return nil, buf.String(), settings.MissingSettingError{Name: "function"}
	}

	return &opts, buf.String(), nil
}
