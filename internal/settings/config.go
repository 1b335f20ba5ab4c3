package settings

import (
	"bytes"
	"flag"
	"fmt"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"os"
	"strconv"
)

const (
	DefaultSubject = "S3 Event Notification"
	DefaultCharset = "UTF-8"
	DefaultRegion  = "us-west-2"
	DefaultPort    = 9060
)

const (
	SenderEmailEnv   = "SENDER_EMAIL"
	ReceiverEmailEnv = "RECEIVER_EMAIL"
	SubjectEnv       = "SUBJECT"
	CharsetEnv       = "CHARSET"
	RegionEnv        = "AWS_REGION"
	SesEndpointEnv   = "SES_ENDPOINT"
	DebugEnv         = "DEBUG"
)

type Config struct {
	SenderEmail   string `yaml:"sender_email"`
	ReceiverEmail string `yaml:"receiver_email"`
	Subject       string `yaml:"subject"`
	Charset       string `yaml:"charset"`
	Region        string `yaml:"region"`
	SesEndpoint   string `yaml:"ses_endpoint"`
	IsDebug       bool   `yaml:"debug"`
	Port          int    `yaml:"port"`
}

func DefaultConfig() *Config {
	return &Config{
		Subject: DefaultSubject,
		Charset: DefaultCharset,
		Region:  DefaultRegion,
		Port:    DefaultPort,
	}
}

func (config *Config) Addr() string {
	return fmt.Sprintf(":%d", config.Port)
}

func (config *Config) Validate() error {
	if config.SenderEmail == "" {
		return MissingSettingError{Name: SenderEmailEnv}
	}

	if config.ReceiverEmail == "" {
		return MissingSettingError{Name: ReceiverEmailEnv}
	}

	return nil
}

// FromEnv builds the configuration used inside Lambda, where everything comes
// from the function's environment. It is read once at cold start.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()
	err := cfg.overlayEnv(getenv)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	logger.Debugf("Loaded configuration from environment: %+v", *cfg)
	return cfg, nil
}

func (config *Config) overlayEnv(getenv func(string) string) error {
	setString := func(name string, target *string) {
		if value := getenv(name); value != "" {
			*target = value
		}
	}

	setString(SenderEmailEnv, &config.SenderEmail)
	setString(ReceiverEmailEnv, &config.ReceiverEmail)
	setString(SubjectEnv, &config.Subject)
	setString(CharsetEnv, &config.Charset)
	setString(RegionEnv, &config.Region)
	setString(SesEndpointEnv, &config.SesEndpoint)

	if value := getenv(DebugEnv); value != "" {
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return InvalidSettingError{Name: DebugEnv, Value: value, base: err}
		}
		config.IsDebug = debug
	}

	return nil
}

func (config *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadError{path: path, base: err}
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return LoadError{path: path, base: err}
	}

	return nil
}

// FromFlags is used by the local webhook server. Values are layered as
// defaults, then environment (optionally seeded from -env-file), then the
// -config YAML file, then any flags given explicitly.
func FromFlags(name string, args []string) (*Config, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var configPath, envFile string
	var cfg Config
	flags.StringVar(&configPath, "config", "", "Path to a YAML settings file")
	flags.StringVar(&envFile, "env-file", "", "Path to a dotenv file loaded into the environment")
	flags.StringVar(&cfg.SenderEmail, "sender", "", "Verified SES identity used as the From address")
	flags.StringVar(&cfg.ReceiverEmail, "receiver", "", "Address that receives notifications")
	flags.StringVar(&cfg.Subject, "subject", DefaultSubject, "Email subject")
	flags.StringVar(&cfg.Charset, "charset", DefaultCharset, "Charset for subject and body")
	flags.StringVar(&cfg.Region, "region", DefaultRegion, "AWS region for SES")
	flags.StringVar(&cfg.SesEndpoint, "ses-endpoint", "", "Endpoint URL for SES, e.g. a local emulator")
	flags.BoolVar(&cfg.IsDebug, "debug", false, "Enable debug logging")
	flags.IntVar(&cfg.Port, "port", DefaultPort, "Port for the webhook listener")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	if envFile != "" {
		err = godotenv.Load(envFile)
		if err != nil {
			return nil, buf.String(), LoadError{path: envFile, base: err}
		}
	}

	result := DefaultConfig()
	err = result.overlayEnv(os.Getenv)
	if err != nil {
		return nil, buf.String(), err
	}

	if configPath != "" {
		err = result.overlayFile(configPath)
		if err != nil {
			return nil, buf.String(), err
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sender":
			result.SenderEmail = cfg.SenderEmail
		case "receiver":
			result.ReceiverEmail = cfg.ReceiverEmail
		case "subject":
			result.Subject = cfg.Subject
		case "charset":
			result.Charset = cfg.Charset
		case "region":
			result.Region = cfg.Region
		case "ses-endpoint":
			result.SesEndpoint = cfg.SesEndpoint
		case "debug":
			result.IsDebug = cfg.IsDebug
		case "port":
			result.Port = cfg.Port
		}
	})

	err = result.Validate()
	if err != nil {
		return nil, buf.String(), err
	}

	return result, buf.String(), nil
}
