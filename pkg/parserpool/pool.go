// Package parserpool provides a pool of gnparser instances that convert
// organism names to their canonical form.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"
	"strings"

	"github.com/gnames/gnparser"
)

// Pool converts scientific names to canonical forms concurrently.
// It satisfies catalog.NameNormalizer.
type Pool interface {
	// Canonical returns the simple canonical form of a scientific name,
	// for example "Escherichia coli" for "Escherichia coli K-12". It
	// returns an empty string for names that cannot be parsed, such as
	// virus names or "Unknown". Safe for concurrent use.
	Canonical(name string) string

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// NewPool creates a new parser pool with the specified number of parsers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}
	cfg := gnparser.NewConfig()
	return &pool{ch: gnparser.NewPool(cfg, size)}
}

func (p *pool) Canonical(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	// blocks if all parsers are busy
	parser := <-p.ch
	res := parser.ParseName(name)
	p.ch <- parser

	if !res.Parsed || res.Canonical == nil {
		return ""
	}
	return res.Canonical.Simple
}

// Close closes the channel and drains any remaining parsers.
func (p *pool) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
	}
}
