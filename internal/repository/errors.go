// Package repository is the persistence gateway: it executes
// parameterized queries against MySQL and returns explicit results.
// Sentinel errors let handlers distinguish failure classes without
// inspecting driver internals.
package repository

import "errors"

// ErrNotFound is returned when a get, update or delete matches zero
// rows. Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")
