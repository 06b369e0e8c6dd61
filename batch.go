package smjson

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alexevladgabriel/sm-json/container"
)

// DecodeAll decodes independent documents concurrently and returns the
// trees in input order. Individual containers remain single-writer; only
// whole, unrelated documents are parsed in parallel.
//
// On the first failure remaining work is cancelled, every already-built
// tree is cleaned up, and the error identifies the failing document by
// index.
func DecodeAll(ctx context.Context, inputs [][]byte, optFns ...func(o *DecodeOptions)) ([]*container.Container, error) {
	out := make([]*container.Container, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, data := range inputs {
		i, data := i, data
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			c, err := Decode(data, optFns...)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, c := range out {
			if c != nil {
				c.Cleanup()
			}
		}
		return nil, err
	}
	return out, nil
}
