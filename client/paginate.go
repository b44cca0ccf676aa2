package client

import (
	"context"
	"iter"

	"github.com/kbukum/mws/envelope"
	"github.com/kbukum/mws/errors"
)

// Pages walks a paged list: first fetches the opening page and next fetches
// each following page by its continuation token. Iteration stops after a
// page without more results, on the first error, or when ctx ends.
//
//	for resp, err := range client.Pages(ctx, first, next) {
//		if err != nil {
//			return err
//		}
//		...
//	}
func Pages[T any](
	ctx context.Context,
	first func(context.Context) (*envelope.Response[T], error),
	next func(ctx context.Context, token string) (*envelope.Response[T], error),
) iter.Seq2[*envelope.Response[T], error] {
	return func(yield func(*envelope.Response[T], error) bool) {
		resp, err := first(ctx)
		for {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(resp, nil) {
				return
			}
			page, ok := resp.Page()
			if !ok || !page.More() {
				return
			}
			if ctx.Err() != nil {
				yield(nil, errors.Timeout("paginate", ctx.Err()))
				return
			}
			resp, err = next(ctx, *page.NextToken)
		}
	}
}

// Paginate calls visit for every page produced by Pages.
func Paginate[T any](
	ctx context.Context,
	first func(context.Context) (*envelope.Response[T], error),
	next func(ctx context.Context, token string) (*envelope.Response[T], error),
	visit func(*envelope.Response[T]) error,
) error {
	for resp, err := range Pages(ctx, first, next) {
		if err != nil {
			return err
		}
		if err := visit(resp); err != nil {
			return err
		}
	}
	return nil
}
