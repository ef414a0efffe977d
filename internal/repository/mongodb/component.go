package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/internal/service"
	"github.com/everydukan/deals-cms/pkg/database"
)

// componentOrderLockID names the lock document every ordering transaction
// writes, so two such transactions always conflict and one is retried.
const componentOrderLockID = "components.order"

type componentDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	model.Component `bson:",inline"`
}

func (d componentDocument) toModel() model.Component {
	c := d.Component
	c.ID = d.ID.Hex()
	return c
}

// ComponentRepository stores homepage components in the components collection.
type ComponentRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
	locks  *mongo.Collection
}

func NewComponentRepository(db *mongo.Database) *ComponentRepository {
	return &ComponentRepository{
		client: db.Client(),
		coll:   db.Collection(database.CollectionComponents),
		locks:  db.Collection(database.CollectionLocks),
	}
}

// inOrderTx runs fn in a transaction that first bumps the ordering lock.
func (r *ComponentRepository) inOrderTx(ctx context.Context, fn func(sc mongo.SessionContext) (any, error)) (any, error) {
	sess, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	return sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		_, err := r.locks.UpdateOne(sc,
			bson.M{"_id": componentOrderLockID},
			bson.M{"$inc": bson.M{"seq": 1}},
			options.Update().SetUpsert(true))
		if err != nil {
			return nil, fmt.Errorf("lock component order: %w", err)
		}
		return fn(sc)
	})
}

func (r *ComponentRepository) sorted(ctx context.Context) ([]model.Component, error) {
	docs, err := findAll[componentDocument](ctx, r.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	components := make([]model.Component, 0, len(docs))
	for _, d := range docs {
		components = append(components, d.toModel())
	}
	return components, nil
}

// Insert appends the component at order max+1, or 0 for the first one.
func (r *ComponentRepository) Insert(ctx context.Context, component *model.Component) error {
	_, err := r.inOrderTx(ctx, func(sc mongo.SessionContext) (any, error) {
		next := 0
		var last componentDocument
		err := r.coll.FindOne(sc, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})).Decode(&last)
		switch {
		case err == nil:
			next = last.Order + 1
		case !errors.Is(err, mongo.ErrNoDocuments):
			return nil, err
		}

		doc := componentDocument{Component: *component}
		doc.Order = next
		id, err := insertOne(sc, r.coll, doc)
		if err != nil {
			return nil, err
		}
		component.ID = id
		component.Order = next
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("insert component: %w", err)
	}
	return nil
}

func (r *ComponentRepository) GetByID(ctx context.Context, id string) (*model.Component, error) {
	doc, err := findOne[componentDocument](ctx, r.coll, id)
	if err != nil || doc == nil {
		return nil, wrapErr("get component", err)
	}
	c := doc.toModel()
	return &c, nil
}

func (r *ComponentRepository) List(ctx context.Context) ([]model.Component, error) {
	components, err := r.sorted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	return components, nil
}

// Update replaces type, title and payload. Payload fields of other
// variants are removed; order is never written here.
func (r *ComponentRepository) Update(ctx context.Context, component *model.Component) (*model.Component, error) {
	set := bson.M{
		"type":      component.Type,
		"title":     component.Title,
		"updatedAt": component.UpdatedAt,
	}
	unset := bson.M{}
	payload := []struct {
		key   string
		value any
		empty bool
	}{
		{"banners", component.Banners, len(component.Banners) == 0},
		{"imageUrl", component.ImageURL, component.ImageURL == ""},
		{"clickUrl", component.ClickURL, component.ClickURL == ""},
		{"buttonText", component.ButtonText, component.ButtonText == ""},
		{"brands", component.Brands, len(component.Brands) == 0},
	}
	for _, p := range payload {
		if p.empty {
			unset[p.key] = ""
		} else {
			set[p.key] = p.value
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	doc, err := updateOne[componentDocument](ctx, r.coll, component.ID, update, service.ErrComponentNotFound)
	if err != nil {
		return nil, wrapErr("update component", err)
	}
	c := doc.toModel()
	return &c, nil
}

// Delete removes the component and shifts every later one down by one.
func (r *ComponentRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	_, err = r.inOrderTx(ctx, func(sc mongo.SessionContext) (any, error) {
		var removed componentDocument
		if err := r.coll.FindOneAndDelete(sc, bson.M{"_id": oid}).Decode(&removed); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, service.ErrComponentNotFound
			}
			return nil, err
		}

		_, err := r.coll.UpdateMany(sc,
			bson.M{"order": bson.M{"$gt": removed.Order}},
			bson.M{"$inc": bson.M{"order": -1}})
		return nil, err
	})
	return wrapErr("delete component", err)
}

// Reorder writes every new order in one bulk write and returns all
// components sorted by the new order.
func (r *ComponentRepository) Reorder(ctx context.Context, orders []model.ComponentOrder) ([]model.Component, error) {
	result, err := r.inOrderTx(ctx, func(sc mongo.SessionContext) (any, error) {
		stored, err := r.storedIDs(sc)
		if err != nil {
			return nil, err
		}

		writes, err := reorderWrites(stored, orders)
		if err != nil {
			return nil, err
		}
		if _, err := r.coll.BulkWrite(sc, writes, options.BulkWrite().SetOrdered(true)); err != nil {
			return nil, err
		}
		return r.sorted(sc)
	})
	if err != nil {
		return nil, wrapErr("reorder components", err)
	}
	return result.([]model.Component), nil
}

func (r *ComponentRepository) storedIDs(ctx context.Context) (map[primitive.ObjectID]struct{}, error) {
	type idOnly struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	docs, err := findAll[idOnly](ctx, r.coll, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	ids := make(map[primitive.ObjectID]struct{}, len(docs))
	for _, d := range docs {
		ids[d.ID] = struct{}{}
	}
	return ids, nil
}

// reorderWrites checks orders against the stored ids and builds one
// update per component.
func reorderWrites(stored map[primitive.ObjectID]struct{}, orders []model.ComponentOrder) ([]mongo.WriteModel, error) {
	writes := make([]mongo.WriteModel, 0, len(orders))
	for _, o := range orders {
		oid, err := primitive.ObjectIDFromHex(o.ID)
		if err != nil {
			return nil, service.ErrComponentNotFound
		}
		if _, ok := stored[oid]; !ok {
			return nil, service.ErrComponentNotFound
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": oid}).
			SetUpdate(bson.M{"$set": bson.M{"order": o.Order}}))
	}
	if len(stored) != len(orders) {
		return nil, service.ErrIncompleteReorder
	}
	return writes, nil
}
