package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Paylink  PaylinkConfig  `mapstructure:"paylink"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StorageConfig selects which backend holds merchant snapshots.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // postgres, redis
}

// CheckoutConfig drives the crypto payment flow: which network the wallet
// must be on and where transfers are sent.
type CheckoutConfig struct {
	ChainID          string        `mapstructure:"chain_id"`
	ChainName        string        `mapstructure:"chain_name"`
	CurrencyName     string        `mapstructure:"currency_name"`
	CurrencySymbol   string        `mapstructure:"currency_symbol"`
	CurrencyDecimals int           `mapstructure:"currency_decimals"`
	RPCURL           string        `mapstructure:"rpc_url"`
	ExplorerURL      string        `mapstructure:"explorer_url"`
	Destination      string        `mapstructure:"destination"`
	CardDelay        time.Duration `mapstructure:"card_delay"`
	SettlementDelay  time.Duration `mapstructure:"settlement_delay"`
}

// PaylinkConfig controls generated payment links.
type PaylinkConfig struct {
	BaseURL string `mapstructure:"base_url"`
	QRSize  int    `mapstructure:"qr_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VG_ (VendorGuard).
// Nested keys use underscore: VG_DATABASE_HOST, VG_STORAGE_BACKEND, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "vendorguard")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("storage.backend", "postgres")
	v.SetDefault("checkout.chain_id", "0x2105")
	v.SetDefault("checkout.chain_name", "Base")
	v.SetDefault("checkout.currency_name", "Ethereum")
	v.SetDefault("checkout.currency_symbol", "ETH")
	v.SetDefault("checkout.currency_decimals", 18)
	v.SetDefault("checkout.rpc_url", "https://mainnet.base.org")
	v.SetDefault("checkout.explorer_url", "https://basescan.org")
	v.SetDefault("checkout.destination", "0x1A2b3C4d5E6f7A8b9C0d1E2f3A4b5C6d7E8f9A0b")
	v.SetDefault("checkout.card_delay", "2500ms")
	v.SetDefault("checkout.settlement_delay", "2s")
	v.SetDefault("paylink.base_url", "https://vendorguard.pro")
	v.SetDefault("paylink.qr_size", 256)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("VG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
