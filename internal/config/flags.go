package config

import "flag"

// flagValues holds flag destinations so only flags the user actually set
// override lower-priority sources.
type flagValues struct {
	fs       *flag.FlagSet
	config   string
	theme    string
	color    string
	logLevel string
	logFile  string
	noSeed   bool
	group    bool
}

func newFlagValues(fs *flag.FlagSet) *flagValues {
	v := &flagValues{fs: fs}
	if fs == nil {
		return v
	}
	fs.StringVar(&v.config, "config", "", "path to a TOML config file")
	fs.StringVar(&v.theme, "theme", "", "color theme: classic, neon or mono")
	fs.StringVar(&v.color, "color", "", "color output: auto, always or never")
	fs.StringVar(&v.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&v.logFile, "log-file", "", "write logs to this file")
	fs.BoolVar(&v.noSeed, "no-seed", false, "start with an empty list")
	fs.BoolVar(&v.group, "group", false, "group printed lists by pending/done")
	return v
}

func (v *flagValues) configPath() string { return v.config }

func (v *flagValues) apply(cfg *Config) {
	if v.fs == nil {
		return
	}
	v.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = v.theme
		case "color":
			cfg.Color = v.color
		case "log-level":
			cfg.LogLevel = v.logLevel
		case "log-file":
			cfg.LogFile = v.logFile
		case "no-seed":
			cfg.Seed = !v.noSeed
		case "group":
			cfg.Group = v.group
		}
	})
}
