package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/db"
)

// AdRepository implements port.AdRepository.
type AdRepository struct {
	coll *mongo.Collection
}

// NewAdRepository returns a repository over the ads collection.
func NewAdRepository(database *mongo.Database) *AdRepository {
	return &AdRepository{coll: database.Collection(db.CollAds)}
}

func (r *AdRepository) Create(ctx context.Context, a domain.Ad) error {
	_, err := r.coll.InsertOne(ctx, a)
	return translate(err)
}

func (r *AdRepository) Get(ctx context.Context, businessID, adID string) (*domain.Ad, error) {
	var a domain.Ad
	err := r.coll.FindOne(ctx, bson.M{"business_id": businessID, "ad_id": adID}).Decode(&a)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AdRepository) List(ctx context.Context, businessID string, f port.AdFilter) (*port.Page[domain.Ad], error) {
	filter := bson.M{"business_id": businessID}
	if f.Search != "" {
		filter["title"] = bson.M{"$regex": f.Search, "$options": "i"}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$all": f.Tags}
	}
	if !f.Changed.IsZero() {
		rq := timeRangeQuery(f.Changed)
		filter["$or"] = bson.A{
			bson.M{"updated_at": rq},
			bson.M{"created_at": rq},
		}
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return paginate[domain.Ad](ctx, r.coll, filter, f.Page, f.PageSize, sort)
}

func (r *AdRepository) Update(ctx context.Context, businessID, adID string, patch port.AdPatch) (*domain.Ad, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.CreativeURL != nil {
		set["creative_url"] = *patch.CreativeURL
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}

	var a domain.Ad
	err := findOneAndUpdate(ctx, r.coll,
		bson.M{"business_id": businessID, "ad_id": adID},
		bson.M{"$set": set}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdRepository) Delete(ctx context.Context, businessID, adID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"business_id": businessID, "ad_id": adID})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdRepository) CountByIDs(ctx context.Context, businessID string, adIDs []string) (int64, error) {
	if len(adIDs) == 0 {
		return 0, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{
		"business_id": businessID,
		"ad_id":       bson.M{"$in": adIDs},
	})
	return n, translate(err)
}
