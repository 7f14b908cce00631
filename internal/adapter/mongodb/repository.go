// Package mongodb implements the repository and analytics ports on top of a
// MongoDB database. Every query carries the tenant's business_id; an id that
// exists under another tenant is indistinguishable from a missing one.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// translate maps driver errors to domain error kinds at the repository
// boundary so raw database errors never reach the presentation layer.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return domain.ErrConflict
	default:
		return err
	}
}

// timeRangeQuery builds a $gte/$lte document from a TimeRange. Callers must
// check IsZero first; an empty document would match nothing useful.
func timeRangeQuery(r port.TimeRange) bson.M {
	q := bson.M{}
	if !r.From.IsZero() {
		q["$gte"] = r.From
	}
	if !r.To.IsZero() {
		q["$lte"] = r.To
	}
	return q
}

// paginate runs a count plus a sorted, skipped, limited find and assembles a
// Page. Page and page size are assumed to be clamped by the usecase layer.
func paginate[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, page, pageSize int, sort bson.D) (*port.Page[T], error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, translate(err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}

	items := []T{}
	if err = cur.All(ctx, &items); err != nil {
		return nil, translate(err)
	}
	return &port.Page[T]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// findOneAndUpdate applies update to the first document matching filter and
// decodes the post-update document into out.
func findOneAndUpdate(ctx context.Context, coll *mongo.Collection, filter, update bson.M, out any) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(out); err != nil {
		return translate(err)
	}
	return nil
}
