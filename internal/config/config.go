package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	HttpPort    string        `yaml:"http_port"`
	LogLevel    string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON     bool          `yaml:"log_json"`
	Storage     string        `yaml:"storage" validate:"oneof=postgres memory"`
	Pg          Pg            `yaml:"pg"`
	AccessTTL   time.Duration `yaml:"access_token_ttl"`
	RefreshTTL  time.Duration `yaml:"refresh_token_ttl"` // zero means refresh tokens never expire
	BcryptCost  int           `yaml:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
	CorsOrigins []string      `yaml:"cors_origins"`
	// like counts fetched in parallel when assembling a thread
	LikeCountConcurrency int `yaml:"like_count_concurrency" validate:"min=1,max=64"`
	// per client ip limit for registration and login, 0 disables it
	AuthRateLimitPerMinute int `yaml:"auth_rate_limit_per_minute" validate:"min=0"`
}

type Pg struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Dbname         string `yaml:"dbname"`
	MaxOpenConns   int    `yaml:"max_open_conns"`
	MigrateOnStart bool   `yaml:"migrate_on_start"`
}

type Private struct {
	PgPassword      string `yaml:"pg_password"`
	AccessTokenKey  string `yaml:"access_token_key"`
	RefreshTokenKey string `yaml:"refresh_token_key"`
}

// New builds a Config from already loaded parts, applying defaults.
func New(public Public, private Private) *Config {
	public.setDefaults()
	return &Config{public, private}
}

func (c *Config) AccessTokenKey() string {
	return c.private.AccessTokenKey
}

func (c *Config) RefreshTokenKey() string {
	return c.private.RefreshTokenKey
}

func (c *Config) PgPassword() string {
	return c.private.PgPassword
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

func (p *Public) setDefaults() {
	if p.HttpPort == "" {
		p.HttpPort = "5000"
	}
	if p.Storage == "" {
		p.Storage = StoragePostgres
	}
	if p.AccessTTL == 0 {
		p.AccessTTL = 30 * time.Minute
	}
	if p.LikeCountConcurrency < 1 {
		p.LikeCountConcurrency = 4
	}
	if p.Pg.Port == 0 {
		p.Pg.Port = 5432
	}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and panics if
// either is missing or malformed.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := New(public, private)
	if err := validator.New().Struct(cfg.Public); err != nil {
		panic("invalid public config: " + err.Error())
	}
	return cfg
}
