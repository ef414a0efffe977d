package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/internal/service"
	"github.com/everydukan/deals-cms/pkg/database"
)

// dealDocument stores prices as doubles so they sort and compare natively.
type dealDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	model.Deal      `bson:",inline"`
	OriginalPrice   float64 `bson:"originalPrice"`
	DiscountedPrice float64 `bson:"discountedPrice"`
}

func newDealDocument(d model.Deal) dealDocument {
	return dealDocument{
		Deal:            d,
		OriginalPrice:   d.OriginalPrice.InexactFloat64(),
		DiscountedPrice: d.DiscountedPrice.InexactFloat64(),
	}
}

func (d dealDocument) toModel() model.Deal {
	deal := d.Deal
	deal.ID = d.ID.Hex()
	deal.OriginalPrice = decimal.NewFromFloat(d.OriginalPrice)
	deal.DiscountedPrice = decimal.NewFromFloat(d.DiscountedPrice)
	return deal
}

// DealRepository stores deals in the Deals collection.
type DealRepository struct {
	coll *mongo.Collection
}

func NewDealRepository(db *mongo.Database) *DealRepository {
	return &DealRepository{coll: db.Collection(database.CollectionDeals)}
}

func (r *DealRepository) Insert(ctx context.Context, deal *model.Deal) error {
	id, err := insertOne(ctx, r.coll, newDealDocument(*deal))
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	deal.ID = id
	return nil
}

func (r *DealRepository) GetByID(ctx context.Context, id string) (*model.Deal, error) {
	doc, err := findOne[dealDocument](ctx, r.coll, id)
	if err != nil || doc == nil {
		return nil, wrapErr("get deal", err)
	}
	d := doc.toModel()
	return &d, nil
}

// dealFilter builds the query document. Search uses the text index on
// title and subtitle.
func dealFilter(filter model.DealFilter) bson.M {
	q := bson.M{}
	if search := strings.TrimSpace(filter.Search); search != "" {
		q["$text"] = bson.M{"$search": search}
	}
	if filter.IsActive != nil {
		q["isActive"] = *filter.IsActive
	}
	return q
}

func (r *DealRepository) List(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error) {
	q := dealFilter(filter)

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count deals: %w", err)
	}

	sortKey := filter.SortBy
	if !model.IsDealSortField(sortKey) {
		sortKey = model.DealSortCreatedAt
	}
	direction := 1
	if filter.SortDesc {
		direction = -1
	}

	docs, err := findAll[dealDocument](ctx, r.coll, q, options.Find().
		SetSort(bson.D{{Key: sortKey, Value: direction}, {Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Offset())).
		SetLimit(int64(filter.Limit)))
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}

	deals := make([]model.Deal, 0, len(docs))
	for _, d := range docs {
		deals = append(deals, d.toModel())
	}
	return deals, total, nil
}

func (r *DealRepository) Update(ctx context.Context, deal *model.Deal) (*model.Deal, error) {
	set, err := setFields(newDealDocument(*deal), "createdAt")
	if err != nil {
		return nil, err
	}

	doc, err := updateOne[dealDocument](ctx, r.coll, deal.ID, bson.M{"$set": set}, service.ErrDealNotFound)
	if err != nil {
		return nil, wrapErr("update deal", err)
	}
	d := doc.toModel()
	return &d, nil
}

func (r *DealRepository) Delete(ctx context.Context, id string) error {
	return wrapErr("delete deal", deleteOne(ctx, r.coll, id, service.ErrDealNotFound))
}

func (r *DealRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"isActive": true, "endDate": bson.M{"$lt": now}},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": now}})
	if err != nil {
		return 0, fmt.Errorf("deactivate expired deals: %w", err)
	}
	return res.ModifiedCount, nil
}
