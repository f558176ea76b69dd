// Package config builds the service configuration once, at start up.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const DefaultGatewayURL = "http://localhost:8222"

// Gateway holds the API gateway base URL and the resource roots derived from it.
type Gateway struct {
	URL       string `json:"gateway"`
	Customers string `json:"customers"`
	Products  string `json:"products"`
	Orders    string `json:"orders"`
}

func NewGateway(base string) (Gateway, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultGatewayURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return Gateway{}, fmt.Errorf("gateway url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Gateway{}, fmt.Errorf("gateway url %q: scheme and host required", base)
	}

	return Gateway{
		URL:       base,
		Customers: base + "/api/v1/customers",
		Products:  base + "/api/v1/products",
		Orders:    base + "/api/v1/orders",
	}, nil
}

type Kafka struct {
	Brokers []string
	Topic   string
	Group   string
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Config struct {
	Gateway Gateway

	HTTPAddr    string
	GRPCAddr    string
	AllowOrigin string
	LogLevel    string

	Kafka     Kafka
	RedisAddr string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gateway.url", DefaultGatewayURL)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("grpc.addr", ":8081")
	v.SetDefault("cors.origin", "http://localhost:5173")
	v.SetDefault("log.level", "info")
	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "auth-submissions")
	v.SetDefault("kafka.group", "stats")
	v.SetDefault("redis.addr", "localhost:6379")
}

// Load merges defaults, the optional file at CONFIG_PATH and CARTIVA_*
// environment variables (gateway.url is CARTIVA_GATEWAY_URL). The environment
// wins over the file.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CARTIVA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	gw, err := NewGateway(v.GetString("gateway.url"))
	if err != nil {
		return nil, err
	}

	var brokers []string
	for _, b := range strings.Split(v.GetString("kafka.brokers"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Config{
		Gateway:     gw,
		HTTPAddr:    v.GetString("http.addr"),
		GRPCAddr:    v.GetString("grpc.addr"),
		AllowOrigin: v.GetString("cors.origin"),
		LogLevel:    v.GetString("log.level"),
		Kafka: Kafka{
			Brokers: brokers,
			Topic:   v.GetString("kafka.topic"),
			Group:   v.GetString("kafka.group"),
		},
		RedisAddr: v.GetString("redis.addr"),
	}, nil
}
