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

type categoryDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	model.Category `bson:",inline"`
}

func (d categoryDocument) toModel() model.Category {
	c := d.Category
	c.ID = d.ID.Hex()
	return c
}

// CategoryRepository stores categories in the Categories collection.
type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(database.CollectionCategories)}
}

func (r *CategoryRepository) Insert(ctx context.Context, category *model.Category) error {
	id, err := insertOne(ctx, r.coll, categoryDocument{Category: *category})
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = id
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	doc, err := findOne[categoryDocument](ctx, r.coll, id)
	if err != nil || doc == nil {
		return nil, wrapErr("get category", err)
	}
	c := doc.toModel()
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	docs, err := findAll[categoryDocument](ctx, r.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]model.Category, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, d.toModel())
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	update := bson.M{"$set": bson.M{"title": category.Title, "updatedAt": category.UpdatedAt}}

	doc, err := updateOne[categoryDocument](ctx, r.coll, category.ID, update, service.ErrCategoryNotFound)
	if err != nil {
		return nil, wrapErr("update category", err)
	}
	c := doc.toModel()
	return &c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return wrapErr("delete category", deleteOne(ctx, r.coll, id, service.ErrCategoryNotFound))
}
