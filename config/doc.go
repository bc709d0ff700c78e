// Package config loads igris runtime configuration.
//
// Values are layered by viper: built-in defaults, then an optional YAML file,
// then IGRIS_-prefixed environment variables (IGRIS_SERVER_ADDRESS,
// IGRIS_GENERATOR_REWIRING_PROB, ...), then any bound command-line flags.
// The merged result is decoded into Config and checked with
// go-playground/validator before use.
//
// A Store keeps the current Config behind a lock and, when watching a file,
// swaps in a freshly validated Config on every fsnotify write event. An
// invalid edit is logged and ignored.
package config
