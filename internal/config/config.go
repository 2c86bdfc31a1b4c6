// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by the server and the
// terminal client. Each binary reads only the groups it needs.
//
// Fields are populated by caarlos0/env through the env/envPrefix tags, by
// command-line flags and by an optional JSON file.
type StructuredConfig struct {
	// App holds token settings, the reported version and the dispatch key.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener addresses and HTTP behaviour.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Reminders tunes the reminder dispatcher.
	Reminders Reminders `envPrefix:"REMINDERS_"`

	// Speech configures dictation in the terminal client.
	Speech Speech `envPrefix:"SPEECH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// TokenSignKey signs and verifies JWTs. Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim. Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token. Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /api/version. Env: APP_VERSION
	Version string `env:"VERSION"`

	// DispatchKey guards POST /api/reminders/dispatch through the
	// X-Dispatch-Key header. Empty disables the check. Env: APP_DISPATCH_KEY
	DispatchKey string `env:"DISPATCH_KEY"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection.
type DB struct {
	// DSN is the connection string. For sqlite it is a file path or
	// "file::memory:?cache=shared". Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is "postgres" (default) or "sqlite". Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the HTTP listen address, host:port. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health service when set.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds each HTTP request. Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins feeds the CORS middleware. Env: SERVER_ALLOWED_ORIGINS
	// (comma separated).
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds the client's connection to the server.
type Adapter struct {
	// HTTPAddress is the server base URL, e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound request. Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogFile is where the client writes its log. Env: ADAPTER_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Workers holds background job settings.
type Workers struct {
	// ReminderInterval runs the dispatcher periodically when positive.
	// Env: WORKERS_REMINDER_INTERVAL
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL"`
}

// Reminders tunes the dispatcher.
type Reminders struct {
	// Window is how far ahead of "now" reminders are picked up.
	// Env: REMINDERS_WINDOW
	Window time.Duration `env:"WINDOW"`
}

// Speech configures the external recognizer used for dictation.
type Speech struct {
	// Command is the speech-to-text executable. It must print the cumulative
	// transcript as one line per partial result. Env: SPEECH_COMMAND
	Command string `env:"COMMAND"`

	// Args are passed to Command. Env: SPEECH_ARGS (space separated).
	Args []string `env:"ARGS" envSeparator:" "`

	// Device is the capture device path. Env: SPEECH_DEVICE
	Device string `env:"DEVICE"`

	// Language is the recognition language tag. Env: SPEECH_LANGUAGE
	Language string `env:"LANGUAGE"`
}

// Default values applied to anything no source has set.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAdapterTimeout = 10 * time.Second
	DefaultTokenIssuer    = "voice-notes"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultReminderWindow = 5 * time.Minute
	DefaultDriver         = DriverPostgres
	DefaultSpeechLanguage = "en-US"
	DefaultSpeechDevice   = "/dev/snd"
	DefaultDotEnvFile     = ".env"
	DriverPostgres        = "postgres"
	DriverSQLite          = "sqlite"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{DB: DB{Driver: DefaultDriver}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Reminders: Reminders{Window: DefaultReminderWindow},
		Speech: Speech{
			Device:   DefaultSpeechDevice,
			Language: DefaultSpeechLanguage,
		},
	}
}

// GetStructuredConfig loads and merges every source. When two sources set
// the same field the earlier one wins:
//  1. environment variables, including those loaded from the dotenv file
//     named by ENV_FILE (or ./.env)
//  2. command-line flags
//  3. the JSON file named by either of the above
//  4. built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetServerConfig returns the configuration validated for cmd/server.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
