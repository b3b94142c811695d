package config

type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

// DatabaseConfig describes where extra blueprint tables live.
type DatabaseConfig struct {
	// BlueprintFiles are read in order after the built-in tables.
	BlueprintFiles []string `yaml:"blueprint_files" mapstructure:"blueprint_files"`
	// Watch reloads a table file when it changes on disk.
	Watch bool `yaml:"watch" mapstructure:"watch"`
}
