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

type couponDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	model.Coupon `bson:",inline"`
}

func (d couponDocument) toModel() model.Coupon {
	c := d.Coupon
	c.ID = d.ID.Hex()
	if c.Terms == nil {
		c.Terms = []string{}
	}
	return c
}

// CouponRepository stores coupons in the Coupons collection.
type CouponRepository struct {
	coll *mongo.Collection
}

func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{coll: db.Collection(database.CollectionCoupons)}
}

func (r *CouponRepository) Insert(ctx context.Context, coupon *model.Coupon) error {
	id, err := insertOne(ctx, r.coll, couponDocument{Coupon: *coupon})
	if err != nil {
		return fmt.Errorf("insert coupon: %w", err)
	}
	coupon.ID = id
	return nil
}

func (r *CouponRepository) GetByID(ctx context.Context, id string) (*model.Coupon, error) {
	doc, err := findOne[couponDocument](ctx, r.coll, id)
	if err != nil || doc == nil {
		return nil, wrapErr("get coupon", err)
	}
	c := doc.toModel()
	return &c, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	docs, err := findAll[couponDocument](ctx, r.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}

	coupons := make([]model.Coupon, 0, len(docs))
	for _, d := range docs {
		coupons = append(coupons, d.toModel())
	}
	return coupons, nil
}

// Update replaces every mutable field. An empty click url is removed
// from the document rather than stored.
func (r *CouponRepository) Update(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	set, err := setFields(coupon, "createdAt")
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": set}
	if coupon.ClickURL == "" {
		update["$unset"] = bson.M{"clickurl": ""}
	}

	doc, err := updateOne[couponDocument](ctx, r.coll, coupon.ID, update, service.ErrCouponNotFound)
	if err != nil {
		return nil, wrapErr("update coupon", err)
	}
	c := doc.toModel()
	return &c, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	return wrapErr("delete coupon", deleteOne(ctx, r.coll, id, service.ErrCouponNotFound))
}
