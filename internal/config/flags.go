package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value. Host must be "localhost" or an IP.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses os.Args.
//
// Flags:
//
//	-a                 HTTP listen address host:port
//	-grpc-address      gRPC listen address host:port
//	-d                 database DSN
//	-driver            database driver (postgres|sqlite)
//	-c / -config       JSON config file
//	-token-sign-key    JWT signing key
//	-token-issuer      JWT issuer
//	-token-duration    JWT lifetime (e.g. 24h)
//	-request-timeout   per-request timeout (e.g. 30s)
//	-dispatch-key      shared key for the dispatch endpoint
//	-reminder-interval reminder worker interval, 0 disables it
//	-reminder-window   how far ahead reminders are picked up
//	-server-url        server base URL used by the client
//	-speech-command    speech-to-text executable used by the client
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("voice-notes", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, driver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var dispatchKey string
	var reminderInterval, reminderWindow time.Duration
	var serverURL, speechCommand string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver: postgres or sqlite")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&dispatchKey, "dispatch-key", "", "Reminder dispatch key")
	fs.DurationVar(&reminderInterval, "reminder-interval", 0, "Reminder worker interval (0 disables)")
	fs.DurationVar(&reminderWindow, "reminder-window", 0, "Reminder look-ahead window")
	fs.StringVar(&serverURL, "server-url", "", "Server base URL for the client")
	fs.StringVar(&speechCommand, "speech-command", "", "Speech-to-text command for the client")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			DispatchKey:   dispatchKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN, Driver: driver},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter:      Adapter{HTTPAddress: serverURL},
		Workers:      Workers{ReminderInterval: reminderInterval},
		Reminders:    Reminders{Window: reminderWindow},
		Speech:       Speech{Command: speechCommand},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port, checking the port is positive and the host is
// "localhost" or a valid IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
