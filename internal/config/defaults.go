package config

const (
	defaultConfigPath    = "~/.config/id3scan/config.toml"
	defaultWorkers       = 0 // runtime.NumCPU()
	defaultOutputFormat  = "table"
	defaultOutputStyle   = "rounded"
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
	defaultEnhancedV1    = true
	defaultMaskedTagSize = false
)

var defaultExtensions = []string{".mp3"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Workers:       defaultWorkers,
			Extensions:    append([]string(nil), defaultExtensions...),
			MaskedTagSize: defaultMaskedTagSize,
			EnhancedV1:    defaultEnhancedV1,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Style:  defaultOutputStyle,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
