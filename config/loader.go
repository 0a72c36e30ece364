package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. APROVA_DATABASE_URL.
const EnvPrefix = "APROVA"

// Load builds the configuration from defaults, the optional YAML file at
// path and APROVA_* environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are absent from the file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("http.addr", cfg.HTTP.Addr)
	v.SetDefault("http.read_timeout", cfg.HTTP.ReadTimeout)
	v.SetDefault("http.write_timeout", cfg.HTTP.WriteTimeout)

	v.SetDefault("database.url", cfg.Database.URL)
	v.SetDefault("database.max_conns", cfg.Database.MaxConns)

	v.SetDefault("temporal.host_port", cfg.Temporal.HostPort)
	v.SetDefault("temporal.namespace", cfg.Temporal.Namespace)
	v.SetDefault("temporal.task_queue", cfg.Temporal.TaskQueue)

	v.SetDefault("webhook.timeout", cfg.Webhook.Timeout)
	v.SetDefault("webhook.bearer_token", cfg.Webhook.BearerToken)
	v.SetDefault("webhook.max_response_bytes", cfg.Webhook.MaxResponseBytes)
	v.SetDefault("webhook.drain_batch_size", cfg.Webhook.DrainBatchSize)

	v.SetDefault("ai.api_key", cfg.AI.APIKey)
	v.SetDefault("ai.base_url", cfg.AI.BaseURL)
	v.SetDefault("ai.default_model", cfg.AI.DefaultModel)
	v.SetDefault("ai.timeout", cfg.AI.Timeout)
	v.SetDefault("ai.cache_ttl", cfg.AI.CacheTTL)

	v.SetDefault("usage.timezone", cfg.Usage.Timezone)

	v.SetDefault("idempotency.ttl", cfg.Idempotency.TTL)
	v.SetDefault("idempotency.size", cfg.Idempotency.Size)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}
