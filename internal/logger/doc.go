// Package logger builds named zap loggers that write the same
// "[time] [name] [level] message" line to a colorized console and to a
// <name>.log file, and keeps them in a Registry for lookup by name.
//
// Loggers reach the code that uses them through a context:
// ToContext stores one, and the Debug/Info/Warn/Error/Critical helpers
// (with f and KV variants) log through whatever the context carries.
// A console-only fallback is used when the context has none.
package logger
