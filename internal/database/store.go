package database

import (
	"context"
	"errors"

	"go-hrms/internal/common/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Page describes an offset/limit window over a query. A zero Limit means no limit.
type Page struct {
	Offset int64
	Limit  int64
	Sort   bson.D
}

// OffsetPage builds the window for a 1-based page number.
func OffsetPage(page, limit int, sort bson.D) Page {
	return Page{Offset: int64(page-1) * int64(limit), Limit: int64(limit), Sort: sort}
}

// NotDeleted matches documents whose soft-delete flag is false.
var NotDeleted = bson.M{"isDeleted": false}

// ObjectID parses a hex id. An id that cannot be parsed cannot exist, so it is NotFound.
func ObjectID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NotFound("%s with ID %s not found", what, id)
	}
	return oid, nil
}

// FindByID decodes the document with the given id.
func FindByID[T any](ctx context.Context, coll *mongo.Collection, id, what string) (*T, error) {
	oid, err := ObjectID(id, what)
	if err != nil {
		return nil, err
	}
	var doc T
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("%s with ID %s not found", what, id)
	}
	if err != nil {
		return nil, apperrors.Store(err, "find "+what)
	}
	return &doc, nil
}

// FindOne decodes the first document matching filter.
func FindOne[T any](ctx context.Context, coll *mongo.Collection, filter any, what string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("%s not found", what)
	}
	if err != nil {
		return nil, apperrors.Store(err, "find "+what)
	}
	return &doc, nil
}

// FindPage returns the documents matching filter inside the page window.
func FindPage[T any](ctx context.Context, coll *mongo.Collection, filter any, page Page) ([]T, error) {
	opts := options.Find()
	if page.Limit > 0 {
		opts.SetLimit(page.Limit)
	}
	if page.Offset > 0 {
		opts.SetSkip(page.Offset)
	}
	if len(page.Sort) > 0 {
		opts.SetSort(page.Sort)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Store(err, "find "+coll.Name())
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.Store(err, "decode "+coll.Name())
	}
	return docs, nil
}

// Count returns the number of documents matching filter.
func Count(ctx context.Context, coll *mongo.Collection, filter any) (int64, error) {
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperrors.Store(err, "count "+coll.Name())
	}
	return n, nil
}

// SetFields applies a $set to the document with the given id.
func SetFields(ctx context.Context, coll *mongo.Collection, id, what string, fields bson.M) error {
	oid, err := ObjectID(id, what)
	if err != nil {
		return err
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return apperrors.Store(err, "update "+what)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("%s with ID %s not found", what, id)
	}
	return nil
}

// Increment atomically adds by to field on the document matching filter and decodes the
// updated document into out.
func Increment(ctx context.Context, coll *mongo.Collection, filter any, field string, by int64, out any, what string) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := coll.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{field: by}}, opts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.NotFound("%s not found", what)
	}
	return apperrors.Store(err, "increment "+what)
}

func indexModels() map[string][]mongo.IndexModel {
	listIndex := mongo.IndexModel{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}}}
	return map[string][]mongo.IndexModel{
		ReportsCollection:         {listIndex},
		ScheduleReportsCollection: {listIndex, {Keys: bson.D{{Key: "reportId", Value: 1}}}},
		EmployeesCollection:       {{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "_id", Value: 1}}}},
		SequencesCollection: {{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
	}
}

// IDFilter matches a document by ObjectID when id is a hex id and by the raw string
// otherwise. Records provisioned outside this service may carry string ids.
func IDFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}
