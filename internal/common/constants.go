package common

import "time"

const (
	DefaultConfigPath = "config/config.yml"

	ConnectionTimeout = 5 * time.Second
	DialTimeout       = 3 * time.Second
	KeepAlive         = 60 * time.Second

	ServerShutdownTimeout = 3 * time.Second

	DefaultStatusInterval = 3 * time.Second
)
