package domain

type Config struct {
	Version         string
	ConfigPath      string
	MaxLength       int            `yaml:"maxLength"`
	OutputDirectory string         `yaml:"outputDirectory"`
	ListenAddr      string         `yaml:"listenAddr"`
	Database        DatabaseConfig `yaml:"database"`
	Companies       []Company      `yaml:"companies"`
	LogPath         string         `yaml:"logPath"`
	LogLevel        string         `yaml:"logLevel"`
	LogMaxSize      int            `yaml:"logMaxSize"` // in megabytes
	LogMaxBackups   int            `yaml:"logMaxBackups"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}
