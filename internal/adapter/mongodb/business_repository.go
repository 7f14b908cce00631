package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"adboard/internal/core/domain"
	"adboard/internal/db"
)

// BusinessRepository implements port.BusinessRepository.
type BusinessRepository struct {
	coll *mongo.Collection
}

// NewBusinessRepository returns a repository over the businesses collection.
func NewBusinessRepository(database *mongo.Database) *BusinessRepository {
	return &BusinessRepository{coll: database.Collection(db.CollBusinesses)}
}

func (r *BusinessRepository) Create(ctx context.Context, b domain.Business) error {
	_, err := r.coll.InsertOne(ctx, b)
	return translate(err)
}

func (r *BusinessRepository) Get(ctx context.Context, businessID string) (*domain.Business, error) {
	var b domain.Business
	err := r.coll.FindOne(ctx, bson.M{"business_id": businessID}).Decode(&b)
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}
