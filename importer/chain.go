/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import "context"

// Importer turns an import URL into the canonical path of the file it loads.
type Importer interface {
	// Canonicalize returns "" with a nil error when the importer does not
	// recognize url. Ambiguity is reported as an error.
	Canonicalize(ctx context.Context, url string) (string, error)
}

// Chain tries multiple importers in order.
type Chain struct {
	importers []Importer
}

// NewChain creates an importer that tries each importer in order.
func NewChain(importers ...Importer) *Chain {
	return &Chain{importers: importers}
}

// Canonicalize returns the first non-empty result. An error from any
// importer stops the chain.
func (c *Chain) Canonicalize(ctx context.Context, url string) (string, error) {
	_, p, err := c.CanonicalizeWith(ctx, url)
	return p, err
}

// CanonicalizeWith is Canonicalize that also returns the importer that
// matched, or nil.
func (c *Chain) CanonicalizeWith(ctx context.Context, url string) (Importer, string, error) {
	for _, imp := range c.importers {
		p, err := imp.Canonicalize(ctx, url)
		if err != nil {
			return imp, "", err
		}
		if p != "" {
			return imp, p, nil
		}
	}
	return nil, "", nil
}

// Len returns the number of importers in the chain.
func (c *Chain) Len() int {
	return len(c.importers)
}
