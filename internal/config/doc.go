// Package config provides environment-driven configuration for the streams
// library.
//
// Settings are loaded from environment variables with sensible defaults, so
// embedding services control the library the same way they control their own
// 12-factor configuration.
//
// Environment Variables:
//   - STREAMS_DEBUG: enable borrowed-view retention checks
//   - STREAMS_LOG_LEVEL, STREAMS_LOG_DEV: default logger construction
package config
