package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rogerio-castellano/wecare-inventory/internal/validate"
)

// Backends the inventory can be stored in.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

const (
	configName = "wecare"
	envPrefix  = "WECARE"
)

type Config struct {
	Shop      Shop      `mapstructure:"shop"`
	Inventory Inventory `mapstructure:"inventory"`
	Invoice   Invoice   `mapstructure:"invoice"`
	Pricing   Pricing   `mapstructure:"pricing"`
	Restock   Restock   `mapstructure:"restock"`
	Log       Log       `mapstructure:"log"`
}

type Shop struct {
	Name string `mapstructure:"name" validate:"required"`
}

type Inventory struct {
	Backend string `mapstructure:"backend" validate:"oneof=file sqlite postgres"`
	Path    string `mapstructure:"path" validate:"required_if=Backend file"`
	DSN     string `mapstructure:"dsn" validate:"required_unless=Backend file"`
}

type Invoice struct {
	Dir       string `mapstructure:"dir" validate:"required"`
	RedisAddr string `mapstructure:"redis_addr" validate:"omitempty,hostname_port"`
}

type Pricing struct {
	Markup    int `mapstructure:"markup" validate:"gt=0"`
	FreeEvery int `mapstructure:"free_every" validate:"gte=0"`
}

type Restock struct {
	MaxQuantity int `mapstructure:"max_quantity" validate:"gt=0"`
}

type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	File   string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("shop.name", "WeCare")
	v.SetDefault("inventory.backend", BackendFile)
	v.SetDefault("inventory.path", "products.txt")
	v.SetDefault("inventory.dsn", "")
	v.SetDefault("invoice.dir", ".")
	v.SetDefault("invoice.redis_addr", "")
	v.SetDefault("pricing.markup", 2)
	v.SetDefault("pricing.free_every", 3)
	v.SetDefault("restock.max_quantity", 999)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// Load reads wecare.yaml from the given directories (the working directory when none are
// given) and WECARE_* environment variables, e.g. WECARE_INVENTORY_PATH. A missing config
// file is not an error.
func Load(dirs ...string) (Config, error) {
	var cfg Config

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if err := validate.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
