// Package mongodb implements the service repositories on a MongoDB database.
// Documents use ObjectID keys; the hex form is exposed as the model id.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/everydukan/deals-cms/internal/service"
)

// objectID parses a hex id. Malformed ids map to service.ErrInvalidID.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, service.ErrInvalidID
	}
	return oid, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (string, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// findOne decodes the document with the given id.
// Returns nil, nil if no document matches.
func findOne[D any](ctx context.Context, coll *mongo.Collection, id string) (*D, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc D
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func findAll[D any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]D, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	docs := []D{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// updateOne applies update to the document with the given id and decodes
// the result. notFound is returned when no document matches.
func updateOne[D any](ctx context.Context, coll *mongo.Collection, id string, update any, notFound error) (*D, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc D
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, err
	}
	return &doc, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string, notFound error) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return notFound
	}
	return nil
}

// setFields renders v as a $set document without the immutable keys.
func setFields(v any, skip ...string) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal update: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal update: %w", err)
	}
	delete(fields, "_id")
	for _, k := range skip {
		delete(fields, k)
	}
	return fields, nil
}

// wrapErr adds context to driver errors and passes service sentinels through unchanged.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		service.ErrInvalidID,
		service.ErrBannerNotFound,
		service.ErrShopNotFound,
		service.ErrCategoryNotFound,
		service.ErrCouponNotFound,
		service.ErrDealNotFound,
		service.ErrComponentNotFound,
		service.ErrUserNotFound,
		service.ErrIncompleteReorder,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
