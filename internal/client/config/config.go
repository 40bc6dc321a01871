package config

import "time"

// Config holds runtime settings for syncctl.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	SecretKey          string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with values matching a local server started with
// its own defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SecretKey = "secretKey"
	c.RequestTimeout = 15 * time.Second
}

// Load applies defaults and then the JSON file at path, if path is set.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path == "" {
		return cfg, nil
	}
	if err := parseJson(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
