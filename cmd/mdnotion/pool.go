package main

import (
	"context"

	"github.com/fwojciec/mdnotion"
	"golang.org/x/sync/errgroup"
)

// tokenizeAll tokenizes docs with at most jobs concurrent workers. Results
// are returned in input order.
func tokenizeAll(ctx context.Context, tok mdnotion.Tokenizer, docs []mdnotion.Document, jobs int) ([]mdnotion.Result, error) {
	results := make([]mdnotion.Result, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, doc := range docs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = doc.Tokenize(tok)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
