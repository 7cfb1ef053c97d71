// Package cli is responsible for parsing command-line flags, wiring the
// collector with its logger and observers, and handling process-level
// concerns like interrupts and exit codes.
package cli
