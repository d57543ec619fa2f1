package config

const (
	defaultOnError   = "pass"
	defaultLogFormat = "text"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults. Encoding and
// EOL default to empty, which means detect from the source and preserve it
// on the way out.
func Default() Config {
	return Config{
		Defaults: Defaults{
			OnError: defaultOnError,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
