package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	SRS    SRSConfig    `mapstructure:"srs"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// SRSConfig contains the scheduling algorithm parameters. All values have
// sensible defaults; overrides exist mainly for experimentation and tests.
type SRSConfig struct {
	// MinFactor is the floor applied after any factor decrease.
	MinFactor float64 `mapstructure:"min_factor" validate:"required,gt=0"`

	// Factor adjustments per recall signal.
	HardFactorPenalty    float64 `mapstructure:"hard_factor_penalty"    validate:"required,gt=0"`
	PartialFactorPenalty float64 `mapstructure:"partial_factor_penalty" validate:"required,gt=0"`
	EasyFactorBonus      float64 `mapstructure:"easy_factor_bonus"      validate:"required,gt=0"`

	// PartialMultiplier is the interval growth applied on partial recall.
	PartialMultiplier float64 `mapstructure:"partial_multiplier" validate:"required,gt=1"`
}
