package repository

import (
	"context"
	"fmt"

	"katana_store/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names are a fixed mapping, never derived from type names.
const (
	katanaCollection = "katana"
	orderCollection  = "order"
)

type mongoKatanaRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func NewMongoKatanaRepository(db *mongo.Database, logger *logrus.Logger) domain.KatanaRepository {
	return &mongoKatanaRepository{
		coll: db.Collection(katanaCollection),
		log:  logger,
	}
}

func (r *mongoKatanaRepository) CreateKatana(ctx context.Context, katana *domain.Katana) (*domain.Katana, error) {
	res, err := r.coll.InsertOne(ctx, katana)
	if err != nil {
		r.log.Errorf("Failed to insert katana '%s': %v", katana.Name, err)
		return nil, fmt.Errorf("could not create katana: %w", err)
	}

	katana.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Infof("Katana inserted with ID %s", katana.ID.Hex())
	return katana, nil
}

// searchFilter matches the query as a case-insensitive substring of the name
// or the steel field. An empty query matches every document.
func searchFilter(query string) bson.M {
	if query == "" {
		return bson.M{}
	}
	regex := primitive.Regex{Pattern: query, Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": regex},
		bson.M{"steel": regex},
	}}
}

func (r *mongoKatanaRepository) SearchKatanas(ctx context.Context, query string) ([]domain.Katana, error) {
	cursor, err := r.coll.Find(ctx, searchFilter(query))
	if err != nil {
		r.log.Errorf("Failed to query katanas (q=%q): %v", query, err)
		return nil, fmt.Errorf("could not retrieve katanas: %w", err)
	}

	var katanas []domain.Katana
	if err := cursor.All(ctx, &katanas); err != nil {
		r.log.Errorf("Failed to decode katana documents: %v", err)
		return nil, fmt.Errorf("error decoding katanas: %w", err)
	}

	r.log.Debugf("Retrieved %d katanas for query %q", len(katanas), query)
	return katanas, nil
}

func (r *mongoKatanaRepository) FindKatanasByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Katana, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.log.Errorf("Failed to fetch katanas by id set (%d ids): %v", len(ids), err)
		return nil, fmt.Errorf("could not retrieve katanas: %w", err)
	}

	var katanas []domain.Katana
	if err := cursor.All(ctx, &katanas); err != nil {
		r.log.Errorf("Failed to decode katana documents: %v", err)
		return nil, fmt.Errorf("error decoding katanas: %w", err)
	}

	r.log.Debugf("Resolved %d of %d requested katana ids", len(katanas), len(ids))
	return katanas, nil
}
