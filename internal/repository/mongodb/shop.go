package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/internal/service"
	"github.com/everydukan/deals-cms/pkg/database"
)

type shopDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	model.Shop `bson:",inline"`
}

func (d shopDocument) toModel() model.Shop {
	s := d.Shop
	s.ID = d.ID.Hex()
	if s.Category == nil {
		s.Category = []string{}
	}
	return s
}

// ShopRepository stores shops in the Shops collection.
type ShopRepository struct {
	coll *mongo.Collection
}

func NewShopRepository(db *mongo.Database) *ShopRepository {
	return &ShopRepository{coll: db.Collection(database.CollectionShops)}
}

func (r *ShopRepository) Insert(ctx context.Context, shop *model.Shop) error {
	id, err := insertOne(ctx, r.coll, shopDocument{Shop: *shop})
	if err != nil {
		return fmt.Errorf("insert shop: %w", err)
	}
	shop.ID = id
	return nil
}

func (r *ShopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	doc, err := findOne[shopDocument](ctx, r.coll, id)
	if err != nil || doc == nil {
		return nil, wrapErr("get shop", err)
	}
	s := doc.toModel()
	return &s, nil
}

// List returns one page of shops newest first and the total shop count.
func (r *ShopRepository) List(ctx context.Context, q model.PageQuery) ([]model.Shop, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count shops: %w", err)
	}

	docs, err := findAll[shopDocument](ctx, r.coll, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit)))
	if err != nil {
		return nil, 0, fmt.Errorf("list shops: %w", err)
	}

	shops := make([]model.Shop, 0, len(docs))
	for _, d := range docs {
		shops = append(shops, d.toModel())
	}
	return shops, total, nil
}

func (r *ShopRepository) Update(ctx context.Context, shop *model.Shop) (*model.Shop, error) {
	set, err := setFields(shop, "createdAt")
	if err != nil {
		return nil, err
	}

	doc, err := updateOne[shopDocument](ctx, r.coll, shop.ID, bson.M{"$set": set}, service.ErrShopNotFound)
	if err != nil {
		return nil, wrapErr("update shop", err)
	}
	s := doc.toModel()
	return &s, nil
}

func (r *ShopRepository) Delete(ctx context.Context, id string) error {
	return wrapErr("delete shop", deleteOne(ctx, r.coll, id, service.ErrShopNotFound))
}
