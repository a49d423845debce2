package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Katana is a catalog product. The id is assigned by the store on insert.
// BladeLengthCM is a pointer so an absent length is distinguishable from an
// explicit zero.
type Katana struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Steel         string             `bson:"steel,omitempty" json:"steel,omitempty"`
	BladeLengthCM *float64           `bson:"blade_length_cm,omitempty" json:"blade_length_cm,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Stock         int                `bson:"stock" json:"stock"`
	Rating        float64            `bson:"rating" json:"rating"`
	Images        []string           `bson:"images" json:"images"`
}

const DefaultRating = 4.5

type KatanaRepository interface {
	CreateKatana(ctx context.Context, katana *Katana) (*Katana, error)
	SearchKatanas(ctx context.Context, query string) ([]Katana, error)
	FindKatanasByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Katana, error)
}
