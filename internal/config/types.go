package config

// Config is the top-level wrkr-docs configuration, corresponding to
// .wrkr-docs.yml.
type Config struct {
	Site           SiteSettings `yaml:"site" koanf:"site"`
	ContentDir     string       `yaml:"content_dir" koanf:"content_dir"`
	StaticDir      string       `yaml:"static_dir" koanf:"static_dir"`
	OutputDir      string       `yaml:"output_dir" koanf:"output_dir"`
	Include        []string     `yaml:"include" koanf:"include"`
	Exclude        []string     `yaml:"exclude" koanf:"exclude"`
	MaxConcurrency int          `yaml:"max_concurrency" koanf:"max_concurrency"`
	LogLevel       string       `yaml:"log_level" koanf:"log_level"`
	LogFormat      string       `yaml:"log_format" koanf:"log_format"`
	Server         ServerConfig `yaml:"server" koanf:"server"`
}

// SiteSettings describes the published site.
type SiteSettings struct {
	Name        string `yaml:"name" koanf:"name"`
	Description string `yaml:"description" koanf:"description"`
	// Origin is scheme and host only, e.g. https://clyra-ai.github.io.
	Origin string `yaml:"origin" koanf:"origin"`
	// BasePath is the sub-path the export is deployed under, or empty.
	BasePath   string `yaml:"base_path" koanf:"base_path"`
	Repository string `yaml:"repository" koanf:"repository"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Port    int  `yaml:"port" koanf:"port"`
	Metrics bool `yaml:"metrics" koanf:"metrics"`
}
