// Package config defines settings shared by the example binaries and
// provides helpers to load, validate and save them in YAML format.
//
// Values from the file can be overridden with EXAMPLES_LOG_* environment
// variables; command line flags take precedence over both.
package config
