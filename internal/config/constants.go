package config

// DefaultServiceName is the service name used when SERVICE_NAME is not set
const DefaultServiceName = "stranded-server"

// Config file paths
const (
	ConfigPathItems = "configs/items.json"
)

// Database pool defaults
const (
	DefaultDBMaxConns    = 10
	DefaultDBMaxIdleMins = 5
	DefaultDBMaxLifeMins = 30
)
