package main

import "time"

// HTTP server limits for the serve command.
const (
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
)

// Valid output formats for the lookup command.
var validLookupFormats = []string{"text", "yaml", "json"}
