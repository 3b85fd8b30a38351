package dal

import (
	"context"
	"fmt"

	"cinetick/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names mirror the original deployment's layout.
const (
	collMovies        = "movies"
	collProjections   = "movie_projections"
	collRatings       = "ratings"
	collOrganizations = "organizations"
	collPersons       = "persons"
	collTickets       = "tickets"
	collUsers         = "users"
)

// MongoStores resolves collection handles lazily from one database handle.
type MongoStores struct {
	db *mongo.Database
}

// NewMongoStores wraps a connected database. The client owning db must be
// configured with Registry() so UUID fields round-trip as binary subtype 4.
func NewMongoStores(db *mongo.Database) *MongoStores {
	return &MongoStores{db: db}
}

func (s *MongoStores) Projections() SeatStore {
	return &mongoSeatStore{
		mongoCollection: mongoCollection[models.MovieProjection]{coll: s.db.Collection(collProjections)},
	}
}

func (s *MongoStores) Movies() Collection[models.Movie] {
	return mongoCollection[models.Movie]{coll: s.db.Collection(collMovies)}
}

func (s *MongoStores) Ratings() Collection[models.Rating] {
	return mongoCollection[models.Rating]{coll: s.db.Collection(collRatings)}
}

func (s *MongoStores) Organizations() Collection[models.Organization] {
	return mongoCollection[models.Organization]{coll: s.db.Collection(collOrganizations)}
}

func (s *MongoStores) Persons() Collection[models.Person] {
	return mongoCollection[models.Person]{coll: s.db.Collection(collPersons)}
}

func (s *MongoStores) Tickets() Collection[models.Ticket] {
	return mongoCollection[models.Ticket]{coll: s.db.Collection(collTickets)}
}

func (s *MongoStores) Users() Collection[models.User] {
	return mongoCollection[models.User]{coll: s.db.Collection(collUsers)}
}

// mongoCollection adapts one *mongo.Collection to the Collection interface.
type mongoCollection[T Entity] struct {
	coll *mongo.Collection
}

func filterDocument(f Filter) bson.D {
	if f.IsEmpty() {
		return bson.D{}
	}
	return bson.D{{Key: f.Key, Value: f.Value}}
}

func (c mongoCollection[T]) Count(ctx context.Context, f Filter) (int64, error) {
	return c.coll.CountDocuments(ctx, filterDocument(f))
}

func (c mongoCollection[T]) Find(ctx context.Context, f Filter, o FindOptions) ([]T, error) {
	opts := options.Find()
	if o.Skip > 0 {
		opts.SetSkip(o.Skip)
	}
	if o.Limit > 0 {
		opts.SetLimit(o.Limit)
	}
	if o.Order != "" {
		dir := 1
		if o.Direction < 0 {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: o.Order, Value: dir}})
	}

	cursor, err := c.coll.Find(ctx, filterDocument(f), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c mongoCollection[T]) FindOne(ctx context.Context, f Filter) (*T, error) {
	var item T
	err := c.coll.FindOne(ctx, filterDocument(f)).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c mongoCollection[T]) InsertMany(ctx context.Context, items []T) (int64, error) {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	res, err := c.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return int64(len(res.InsertedIDs)), nil
}

func (c mongoCollection[T]) UpsertMany(ctx context.Context, items []T) (int64, error) {
	writes := make([]mongo.WriteModel, len(items))
	for i, item := range items {
		writes[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: primaryKey, Value: item.EntityID()}}).
			SetReplacement(item).
			SetUpsert(true)
	}
	res, err := c.coll.BulkWrite(ctx, writes)
	if err != nil {
		return 0, err
	}
	return res.InsertedCount + res.ModifiedCount + res.UpsertedCount, nil
}

func (c mongoCollection[T]) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	filter := bson.D{{Key: primaryKey, Value: bson.D{{Key: "$in", Value: ids}}}}
	res, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// mongoSeatStore adds the conditional seat-counter updates. Both run as a
// single UpdateOne whose filter carries the guard, so the check and the
// mutation cannot interleave with a concurrent request.
type mongoSeatStore struct {
	mongoCollection[models.MovieProjection]
}

func (s *mongoSeatStore) DecrementSeats(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
	if qty <= 0 {
		return false, fmt.Errorf("quantity must be positive, got %d", qty)
	}
	res, err := s.coll.UpdateOne(ctx,
		bson.D{
			{Key: primaryKey, Value: id},
			{Key: "available_seats", Value: bson.D{{Key: "$gte", Value: qty}}},
		},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "available_seats", Value: -qty}}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (s *mongoSeatStore) IncrementSeats(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
	if qty <= 0 {
		return false, fmt.Errorf("quantity must be positive, got %d", qty)
	}
	res, err := s.coll.UpdateOne(ctx,
		bson.D{
			{Key: primaryKey, Value: id},
			{Key: "$expr", Value: bson.D{{Key: "$lte", Value: bson.A{
				bson.D{{Key: "$add", Value: bson.A{"$available_seats", qty}}},
				"$total_seats",
			}}}},
		},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "available_seats", Value: qty}}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
