package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/pkg/database"
)

type userDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	model.User `bson:",inline"`
}

// UserRepository stores app users in the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(database.CollectionUsers)}
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	id, err := insertOne(ctx, r.coll, userDocument{User: *user})
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	doc, err := findOne[userDocument](ctx, r.coll, id)
	if err != nil || doc == nil {
		return nil, wrapErr("get user", err)
	}
	u := doc.User
	u.ID = doc.ID.Hex()
	if u.Preferences == nil {
		u.Preferences = []string{}
	}
	return &u, nil
}
