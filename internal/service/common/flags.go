package common

import "github.com/spf13/pflag"

// BindLogFlags registers the logging flags shared by the demo commands.
func BindLogFlags(flags *pflag.FlagSet, opts *LogOptions) {
	flags.StringVarP(&opts.ConfigPath, "config", "c", "",
		"path to configuration file (examples-settings.yaml is read if present)")
	flags.StringVarP(&opts.Level, "log-level", "l", "", "minimum log level: debug, info, warning, error or critical")
	flags.StringVar(&opts.Dir, "log-dir", "", "directory for log files")
}
