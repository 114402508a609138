package config

import "time"

const (
	defaultPort            = 3000
	defaultStaticDir       = "../frontend"
	defaultMaxOpenConns    = 10
	defaultBcryptCost      = 10
	defaultLogLevel        = "debug"
	defaultShutdownTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BcryptCost: defaultBcryptCost,
			LogLevel:   defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverMySQL,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			Port:            defaultPort,
			StaticDir:       defaultStaticDir,
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
