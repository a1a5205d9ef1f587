package store

import (
	"context"
	"fmt"

	"github.com/visitpazar/api/internal/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names follow the original convention: the lowercase entity name.
const (
	PlaceCollection   = "place"
	GuideCollection   = "guide"
	EventCollection   = "event"
	TourCollection    = "tour"
	BookingCollection = "booking"
	PremiumCollection = "premiumcontent"
)

// Mongo is the document store adapter. Documents are inserted and read as
// typed records; the driver-generated _id never appears on the model structs,
// so callers only ever see the modeled fields.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(client *mongo.Client, dbName string) *Mongo {
	return &Mongo{db: client.Database(dbName)}
}

// Create inserts doc into the named collection and returns the
// store-generated identifier as a string.
func (m *Mongo) Create(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", apperr.Storage(fmt.Errorf("insert into %s: %w", collection, err))
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Query decodes up to limit documents matching every key/value pair in filter
// into out, which must be a pointer to a slice. An empty filter matches all.
// Results come back in the store's natural order.
func (m *Mongo) Query(ctx context.Context, collection string, filter map[string]any, limit int64, out any) error {
	if filter == nil {
		filter = map[string]any{}
	}
	cur, err := m.db.Collection(collection).Find(ctx, bson.M(filter), options.Find().SetLimit(limit))
	if err != nil {
		return apperr.Storage(fmt.Errorf("query %s: %w", collection, err))
	}
	if err := cur.All(ctx, out); err != nil {
		return apperr.Storage(fmt.Errorf("decode %s results: %w", collection, err))
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.db.Client().Ping(ctx, nil); err != nil {
		return apperr.Storage(fmt.Errorf("ping: %w", err))
	}
	return nil
}

// CollectionNames lists the collections of the target database, used by the
// connectivity diagnostic endpoint.
func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list collections: %w", err))
	}
	return names, nil
}
