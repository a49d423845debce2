package usecase_test

import (
	"context"
	"io"
	"strings"

	"katana_store/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeKatanaRepo struct {
	katanas map[primitive.ObjectID]domain.Katana
	err     error
}

func newFakeKatanaRepo() *fakeKatanaRepo {
	return &fakeKatanaRepo{katanas: make(map[primitive.ObjectID]domain.Katana)}
}

func (f *fakeKatanaRepo) add(name, steel string, price float64) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.katanas[id] = domain.Katana{
		ID:     id,
		Name:   name,
		Steel:  steel,
		Price:  price,
		Rating: domain.DefaultRating,
		Images: []string{},
	}
	return id
}

func (f *fakeKatanaRepo) CreateKatana(_ context.Context, katana *domain.Katana) (*domain.Katana, error) {
	if f.err != nil {
		return nil, f.err
	}
	katana.ID = primitive.NewObjectID()
	f.katanas[katana.ID] = *katana
	return katana, nil
}

func (f *fakeKatanaRepo) SearchKatanas(_ context.Context, query string) ([]domain.Katana, error) {
	if f.err != nil {
		return nil, f.err
	}
	q := strings.ToLower(query)
	var out []domain.Katana
	for _, katana := range f.katanas {
		if query == "" || strings.Contains(strings.ToLower(katana.Name), q) || strings.Contains(strings.ToLower(katana.Steel), q) {
			out = append(out, katana)
		}
	}
	return out, nil
}

func (f *fakeKatanaRepo) FindKatanasByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Katana, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Katana
	for _, id := range ids {
		if katana, ok := f.katanas[id]; ok {
			out = append(out, katana)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders []domain.Order
	err    error
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, *order)
	return order, nil
}

type fakePublisher struct {
	published []domain.Order
}

func (f *fakePublisher) OrderCreated(_ context.Context, order *domain.Order) {
	f.published = append(f.published, *order)
}
