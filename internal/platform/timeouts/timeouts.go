// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StoreOp caps a single storage call made on behalf of a request or a
// console command.
const StoreOp = 3 * time.Second

// StoreBusy is how long SQLite waits on a locked database before failing.
const StoreBusy = 5 * time.Second
