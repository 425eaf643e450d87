package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "UPLOAD"

var DefaultAllowedExtensions = []string{
	"txt", "pdf", "png", "jpg", "jpeg", "gif", "doc", "docx",
	"xls", "xlsx", "csv", "json", "xml", "zip",
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Health  HealthConfig  `mapstructure:"health"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	Mode      string `mapstructure:"mode"`
	Swagger   bool   `mapstructure:"swagger"`
	SecretKey string `mapstructure:"secret_key"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type UploadConfig struct {
	MaxSize           int64    `mapstructure:"max_size"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	RateLimitQPS      int      `mapstructure:"rate_limit_qps"` // 0 disables limiting
}

type HealthConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// Load reads defaults, an optional config.yaml and UPLOAD_* environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Upload.AllowedExtensions = normalizeExtensions(cfg.Upload.AllowedExtensions)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.swagger", true)
	v.SetDefault("server.secret_key", "dev-secret-key-change-in-production")

	v.SetDefault("storage.path", "./uploads")

	v.SetDefault("upload.max_size", 16<<20)
	v.SetDefault("upload.allowed_extensions", DefaultAllowedExtensions)
	v.SetDefault("upload.rate_limit_qps", 0)

	v.SetDefault("health.timeout", 2*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.file_path", "")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("invalid storage.path: must not be empty")
	}
	if c.Upload.MaxSize <= 0 {
		return fmt.Errorf("invalid upload.max_size: %d", c.Upload.MaxSize)
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("invalid upload.allowed_extensions: must not be empty")
	}
	if c.Upload.RateLimitQPS < 0 {
		return fmt.Errorf("invalid upload.rate_limit_qps: %d", c.Upload.RateLimitQPS)
	}
	if c.Health.Timeout <= 0 {
		return fmt.Errorf("invalid health.timeout: %s", c.Health.Timeout)
	}

	switch c.Server.Mode {
	case "release", "debug", "test":
	default:
		return fmt.Errorf("invalid server.mode: %q", c.Server.Mode)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format: %q", c.Log.Format)
	}

	switch c.Log.Output {
	case "console":
	case "file", "both":
		if c.Log.FilePath == "" {
			return fmt.Errorf("log.file_path is required for log.output %q", c.Log.Output)
		}
	default:
		return fmt.Errorf("invalid log.output: %q", c.Log.Output)
	}

	return nil
}

// normalizeExtensions lowercases, strips leading dots and drops blanks and
// duplicates. Env values arrive as a single comma-separated string.
func normalizeExtensions(exts []string) []string {
	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))

	for _, raw := range exts {
		for _, ext := range strings.Split(raw, ",") {
			ext = strings.ToLower(strings.TrimLeft(strings.TrimSpace(ext), "."))
			if ext == "" || seen[ext] {
				continue
			}
			seen[ext] = true
			out = append(out, ext)
		}
	}

	return out
}
