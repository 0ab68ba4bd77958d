package config

const (
	defaultOutput            = "output.lpl"
	defaultArchiveFormat     = "7z"
	defaultStorageMode       = "merged"
	defaultValidationTimeout = 10
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Output: defaultOutput,
		},
		Romset: Romset{
			ArchiveFormat: defaultArchiveFormat,
			StorageMode:   defaultStorageMode,
		},
		Validation: Validation{
			TimeoutSeconds: defaultValidationTimeout,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
