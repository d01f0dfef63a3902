// Package modkit provides module wiring and core deps
package modkit

import "ttt/internal/modkit/module"

// Module is the common surface for API modules
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
