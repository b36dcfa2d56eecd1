package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Tracking    TrackingConfig    `mapstructure:"tracking" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// RedisConfig holds the Redis connection settings for the redis counter backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
}

// TrackingConfig holds usage tracking configuration: which counter backend to
// use, the summary table prefix, the label reported as this server's name, and
// the set of enabled summarization dimensions.
type TrackingConfig struct {
	Backend     string   `mapstructure:"backend" validate:"required,oneof=redis file"`
	TablePrefix string   `mapstructure:"table_prefix" validate:"required"`
	ServerName  string   `mapstructure:"server_name" validate:"required"`
	Dimensions  []string `mapstructure:"dimensions" validate:"required,min=1,dive,oneof=url remote useragent language server"`
}
