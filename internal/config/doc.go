// Package config loads, merges and validates configuration for the
// voice-notes server and terminal client.
//
// Sources are a dotenv file, environment variables, command-line flags, a
// JSON file and built-in defaults. [GetServerConfig] and [GetClientConfig]
// are the entry points for the two binaries.
package config
