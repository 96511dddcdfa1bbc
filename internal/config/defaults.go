package config

const (
	defaultConfigPath = "~/.config/buildprint/config.toml"
	projectConfigName = "buildprint.toml"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
)

// Default returns a Config populated with repository defaults. An empty theme
// root resolves to the working directory during normalization.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
