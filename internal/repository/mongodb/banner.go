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

type bannerDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	model.Banner `bson:",inline"`
}

func (d bannerDocument) toModel() model.Banner {
	b := d.Banner
	b.ID = d.ID.Hex()
	return b
}

// BannerRepository stores banners in the Banners collection.
type BannerRepository struct {
	coll *mongo.Collection
}

func NewBannerRepository(db *mongo.Database) *BannerRepository {
	return &BannerRepository{coll: db.Collection(database.CollectionBanners)}
}

func (r *BannerRepository) Insert(ctx context.Context, banner *model.Banner) error {
	id, err := insertOne(ctx, r.coll, bannerDocument{Banner: *banner})
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	banner.ID = id
	return nil
}

func (r *BannerRepository) GetByID(ctx context.Context, id string) (*model.Banner, error) {
	doc, err := findOne[bannerDocument](ctx, r.coll, id)
	if err != nil || doc == nil {
		return nil, wrapErr("get banner", err)
	}
	b := doc.toModel()
	return &b, nil
}

func (r *BannerRepository) List(ctx context.Context, active *bool) ([]model.Banner, error) {
	filter := bson.M{}
	if active != nil {
		filter["isActive"] = *active
	}

	docs, err := findAll[bannerDocument](ctx, r.coll, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}

	banners := make([]model.Banner, 0, len(docs))
	for _, d := range docs {
		banners = append(banners, d.toModel())
	}
	return banners, nil
}

func (r *BannerRepository) Update(ctx context.Context, banner *model.Banner) (*model.Banner, error) {
	set, err := setFields(banner, "createdAt")
	if err != nil {
		return nil, err
	}

	doc, err := updateOne[bannerDocument](ctx, r.coll, banner.ID, bson.M{"$set": set}, service.ErrBannerNotFound)
	if err != nil {
		return nil, wrapErr("update banner", err)
	}
	b := doc.toModel()
	return &b, nil
}

func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	return wrapErr("delete banner", deleteOne(ctx, r.coll, id, service.ErrBannerNotFound))
}
