package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/db"
)

// RegistrationRepository implements port.RegistrationRepository.
type RegistrationRepository struct {
	coll *mongo.Collection
}

// NewRegistrationRepository returns a repository over the registrations
// collection.
func NewRegistrationRepository(database *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{coll: database.Collection(db.CollRegistrations)}
}

func registrationQuery(businessID string, f port.RegistrationFilter) bson.M {
	filter := bson.M{"business_id": businessID}
	if len(f.CampaignIDs) > 0 {
		filter["campaign_id"] = bson.M{"$in": f.CampaignIDs}
	}
	if len(f.AdIDs) > 0 {
		filter["ad_id"] = bson.M{"$in": f.AdIDs}
	}
	if len(f.Sources) > 0 {
		filter["source"] = bson.M{"$in": f.Sources}
	}
	if len(f.Statuses) > 0 {
		filter["status"] = bson.M{"$in": f.Statuses}
	}
	if !f.Range.IsZero() {
		filter["timestamp"] = timeRangeQuery(f.Range)
	}
	return filter
}

func (r *RegistrationRepository) Create(ctx context.Context, reg domain.Registration) error {
	_, err := r.coll.InsertOne(ctx, reg)
	return translate(err)
}

func (r *RegistrationRepository) Get(ctx context.Context, businessID, registrationID string) (*domain.Registration, error) {
	var reg domain.Registration
	err := r.coll.FindOne(ctx, bson.M{"business_id": businessID, "registration_id": registrationID}).Decode(&reg)
	if err != nil {
		return nil, translate(err)
	}
	return &reg, nil
}

func (r *RegistrationRepository) List(ctx context.Context, businessID string, f port.RegistrationFilter) (*port.Page[domain.Registration], error) {
	sort := bson.D{{Key: "timestamp", Value: -1}}
	return paginate[domain.Registration](ctx, r.coll, registrationQuery(businessID, f), f.Page, f.PageSize, sort)
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, businessID, registrationID, status string) (*domain.Registration, error) {
	var reg domain.Registration
	err := findOneAndUpdate(ctx, r.coll,
		bson.M{"business_id": businessID, "registration_id": registrationID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}, &reg)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, businessID, registrationID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"business_id": businessID, "registration_id": registrationID})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RegistrationRepository) ListAll(ctx context.Context, businessID string, f port.RegistrationFilter) ([]domain.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.coll.Find(ctx, registrationQuery(businessID, f), opts)
	if err != nil {
		return nil, translate(err)
	}
	items := []domain.Registration{}
	if err = cur.All(ctx, &items); err != nil {
		return nil, translate(err)
	}
	return items, nil
}
