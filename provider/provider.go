// Package provider defines the upstream translation interface and implementations.
package provider

import "github.com/ZaguanLabs/puente"

// Upstream is the interface for AI translation backends.
// This is an alias to the main package interface for convenience.
type Upstream = puente.Upstream

// Request is an alias to the main package type.
type Request = puente.Request
