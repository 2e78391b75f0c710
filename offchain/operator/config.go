package operator

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the operator configuration
type Config struct {
	Chain struct {
		ChainID        string `yaml:"chain_id"`
		RPCURL         string `yaml:"rpc_url"`
		WebSocketURL   string `yaml:"websocket_url"`
		Home           string `yaml:"home"`
		KeyringBackend string `yaml:"keyring_backend"`
		From           string `yaml:"from"`
		Gas            uint64 `yaml:"gas"`
		GasPrices      string `yaml:"gas_prices"`
	} `yaml:"chain"`
	Schedule struct {
		TickCron       string        `yaml:"tick_cron"`
		WatchBlocks    bool          `yaml:"watch_blocks"`
		ReconnectDelay time.Duration `yaml:"reconnect_delay"`
		MaxPerTick     int           `yaml:"max_per_tick"`
	} `yaml:"schedule"`
	Submitter struct {
		Type          string        `yaml:"type"`
		BatchSize     int           `yaml:"batch_size"`
		RetryAttempts int           `yaml:"retry_attempts"`
		RetryDelay    time.Duration `yaml:"retry_delay"`
		MaxAttempts   int           `yaml:"max_attempts"`
	} `yaml:"submitter"`
	Journal struct {
		Path string `yaml:"path"`
	} `yaml:"journal"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
}

// LoadConfig reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FUNDD_OPERATOR_CHAIN_ID"); v != "" {
		c.Chain.ChainID = v
	}
	if v := os.Getenv("FUNDD_OPERATOR_RPC"); v != "" {
		c.Chain.RPCURL = v
	}
	if v := os.Getenv("FUNDD_OPERATOR_WS"); v != "" {
		c.Chain.WebSocketURL = v
	}
	if v := os.Getenv("FUNDD_OPERATOR_FROM"); v != "" {
		c.Chain.From = v
	}
	if v := os.Getenv("FUNDD_OPERATOR_SUBMITTER"); v != "" {
		c.Submitter.Type = v
	}
	if v := os.Getenv("FUNDD_OPERATOR_TICK_CRON"); v != "" {
		c.Schedule.TickCron = v
	}
	if v := os.Getenv("FUNDD_OPERATOR_JOURNAL"); v != "" {
		c.Journal.Path = v
	}
	if v := os.Getenv("FUNDD_OPERATOR_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Submitter.MaxAttempts = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Chain.RPCURL == "" {
		c.Chain.RPCURL = "http://localhost:26657"
	}
	if c.Chain.WebSocketURL == "" {
		c.Chain.WebSocketURL = "ws://localhost:26657/websocket"
	}
	if c.Chain.KeyringBackend == "" {
		c.Chain.KeyringBackend = "test"
	}
	if c.Chain.Gas == 0 {
		c.Chain.Gas = 400000
	}
	if c.Schedule.TickCron == "" {
		c.Schedule.TickCron = "0 * * * * *"
	}
	if c.Schedule.ReconnectDelay == 0 {
		c.Schedule.ReconnectDelay = 5 * time.Second
	}
	if c.Schedule.MaxPerTick == 0 {
		c.Schedule.MaxPerTick = 50
	}
	if c.Submitter.Type == "" {
		c.Submitter.Type = "mock"
	}
	if c.Submitter.BatchSize == 0 {
		c.Submitter.BatchSize = 20
	}
	if c.Submitter.RetryAttempts == 0 {
		c.Submitter.RetryAttempts = 3
	}
	if c.Submitter.RetryDelay == 0 {
		c.Submitter.RetryDelay = time.Second
	}
	if c.Submitter.MaxAttempts == 0 {
		c.Submitter.MaxAttempts = 5
	}
	if c.Journal.Path == "" {
		c.Journal.Path = "data/operator.db"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9464"
	}
}

// Validate checks that the fields the selected submitter needs are set
func (c *Config) Validate() error {
	switch c.Submitter.Type {
	case "mock":
	case "batch":
		if c.Chain.ChainID == "" {
			return errors.New("chain.chain_id is required for the batch submitter")
		}
		if c.Chain.From == "" {
			return errors.New("chain.from is required for the batch submitter")
		}
	default:
		return fmt.Errorf("submitter.type must be mock or batch, got %q", c.Submitter.Type)
	}
	if c.Submitter.BatchSize < 0 || c.Submitter.RetryAttempts < 0 || c.Submitter.MaxAttempts < 0 {
		return errors.New("submitter limits cannot be negative")
	}
	return nil
}

// BatchConfig returns the batch submitter settings
func (c *Config) BatchConfig() *BatchSubmitterConfig {
	return &BatchSubmitterConfig{
		BatchSize:     c.Submitter.BatchSize,
		RetryAttempts: c.Submitter.RetryAttempts,
		RetryDelay:    c.Submitter.RetryDelay,
	}
}
