//go:build debug

package main

// debugBuild selects detailed error output and debug logging.
const debugBuild = true
