// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package engine implements the CPU rasterization context: the
// owner of textures, meshes and the processor pool that a host
// application drives draw calls through.
package engine

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/kvlabs/swrast/internal/handle"
	"github.com/kvlabs/swrast/pool"
	"github.com/kvlabs/swrast/scene"
)

const (
	dflBinCapacity = 4096
)

// Config configures a Context.
type Config struct {
	// NumThreads is the size of the processor pool.
	//
	// Default is runtime.NumCPU().
	NumThreads int

	// BinCapacity is the number of FragmentBin slots preallocated
	// for the pool's bin array.
	//
	// Default is 4096.
	BinCapacity int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		NumThreads:  runtime.NumCPU(),
		BinCapacity: dflBinCapacity,
	}
}

// Error kinds, per spec.md §7. Every error this package returns
// wraps exactly one of these, so callers can classify failures
// with errors.Is regardless of the specific message.
var (
	// ErrConfiguration marks an invalid Drawable or framebuffer
	// argument, pipeline state, mesh parameter, or Config value.
	ErrConfiguration = errors.New("engine: configuration error")

	// ErrResourceExhaustion marks a failed texture allocation:
	// CreateTexture wraps every texture.New error in it, including
	// invalid dimensions.
	ErrResourceExhaustion = errors.New("engine: resource exhaustion")

	// ErrInvalidOperation marks a draw call issued with no depth
	// buffer but a depth-test-enabled pipeline, an unknown handle,
	// or bin-array overflow that could not be drained.
	ErrInvalidOperation = errors.New("engine: invalid operation")

	// ErrPlatform marks a presentation-surface failure.
	ErrPlatform = errors.New("engine: platform error")
)

// Context owns every texture and mesh created through it, plus the
// processor pool that executes draw and blit calls against them
// (spec.md §3's "Ownership summary").
type Context struct {
	cfg       Config
	pool      *pool.ProcessorPool
	textures  handle.Table[*textureEntry]
	meshes    handle.Table[*meshEntry]
	instances scene.Instances
}

// New creates a Context using config. A nil config is equivalent to
// DefaultConfig.
func New(config *Config) (*Context, error) {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if cfg.NumThreads < 1 {
		return nil, fmt.Errorf("%w: NumThreads must be at least 1, have %d", ErrConfiguration, cfg.NumThreads)
	}
	if cfg.BinCapacity < 1 {
		return nil, fmt.Errorf("%w: BinCapacity must be at least 1, have %d", ErrConfiguration, cfg.BinCapacity)
	}
	return &Context{
		cfg:  cfg,
		pool: pool.New(cfg.NumThreads, cfg.BinCapacity),
	}, nil
}

// Configure replaces c's configuration. It resizes the processor
// pool's worker count in place; the pool's bin array keeps the
// capacity it was created with, so a new BinCapacity is validated
// and stored but does not change it. In-flight draw calls are
// unaffected since a draw call is not cancellable once issued
// (spec.md §5).
func (c *Context) Configure(config Config) error {
	if config.NumThreads < 1 {
		return fmt.Errorf("%w: NumThreads must be at least 1, have %d", ErrConfiguration, config.NumThreads)
	}
	if config.BinCapacity < 1 {
		return fmt.Errorf("%w: BinCapacity must be at least 1, have %d", ErrConfiguration, config.BinCapacity)
	}
	c.cfg = config
	c.pool.Resize(config.NumThreads)
	return nil
}

// NumThreads returns the processor pool's worker count.
func (c *Context) NumThreads() int { return c.pool.NumThreads() }
