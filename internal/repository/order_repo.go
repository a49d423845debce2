package repository

import (
	"context"
	"fmt"

	"katana_store/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoOrderRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func NewMongoOrderRepository(db *mongo.Database, logger *logrus.Logger) domain.OrderRepository {
	return &mongoOrderRepository{
		coll: db.Collection(orderCollection),
		log:  logger,
	}
}

func (r *mongoOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		r.log.Errorf("Failed to insert order for %s: %v", order.CustomerEmail, err)
		return nil, fmt.Errorf("could not create order: %w", err)
	}

	order.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Infof("Order %s created with %d items.", order.ID.Hex(), len(order.Items))
	return order, nil
}
