package config

import "flag"

const Version = "1.0.0"

var CliArgs *CliConfig

type CliConfig struct {
	ConfigFile string
	Debug      bool
	Version    bool
}

// ParseArgs parses the command line (without the program name) into CliArgs.
func ParseArgs(args []string) error {
	if CliArgs != nil {
		panic("already defined")
	}
	cli := &CliConfig{}
	fs := flag.NewFlagSet("storybot", flag.ContinueOnError)
	fs.StringVar(&cli.ConfigFile, "config", "", "Path to a YAML config file")
	fs.BoolVar(&cli.Debug, "d", false, "Enable debug logging")
	fs.BoolVar(&cli.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&cli.Version, "v", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	CliArgs = cli
	return nil
}
