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

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	coll *mongo.Collection
}

// NewCampaignRepository returns a repository over the campaigns collection.
func NewCampaignRepository(database *mongo.Database) *CampaignRepository {
	return &CampaignRepository{coll: database.Collection(db.CollCampaigns)}
}

func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) error {
	_, err := r.coll.InsertOne(ctx, c)
	return translate(err)
}

func (r *CampaignRepository) Get(ctx context.Context, businessID, campaignID string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.coll.FindOne(ctx, bson.M{"business_id": businessID, "campaign_id": campaignID}).Decode(&c)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CampaignRepository) List(ctx context.Context, businessID string, f port.CampaignFilter) (*port.Page[domain.Campaign], error) {
	filter := bson.M{"business_id": businessID}
	if f.Search != "" {
		filter["name"] = bson.M{"$regex": f.Search, "$options": "i"}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if !f.Changed.IsZero() {
		rq := timeRangeQuery(f.Changed)
		filter["$or"] = bson.A{
			bson.M{"updated_at": rq},
			bson.M{"created_at": rq},
		}
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return paginate[domain.Campaign](ctx, r.coll, filter, f.Page, f.PageSize, sort)
}

func (r *CampaignRepository) Update(ctx context.Context, businessID, campaignID string, patch port.CampaignPatch) (*domain.Campaign, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Targeting != nil {
		set["targeting"] = *patch.Targeting
	}

	var c domain.Campaign
	err := findOneAndUpdate(ctx, r.coll,
		bson.M{"business_id": businessID, "campaign_id": campaignID},
		bson.M{"$set": set}, &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Delete(ctx context.Context, businessID, campaignID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"business_id": businessID, "campaign_id": campaignID})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) AttachAds(ctx context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := findOneAndUpdate(ctx, r.coll,
		bson.M{"business_id": businessID, "campaign_id": campaignID},
		bson.M{
			"$addToSet": bson.M{"ad_ids": bson.M{"$each": adIDs}},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		}, &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) DetachAds(ctx context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := findOneAndUpdate(ctx, r.coll,
		bson.M{"business_id": businessID, "campaign_id": campaignID},
		bson.M{
			"$pull": bson.M{"ad_ids": bson.M{"$in": adIDs}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		}, &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) DetachAdFromAll(ctx context.Context, businessID, adID string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"business_id": businessID, "ad_ids": adID},
		bson.M{
			"$pull": bson.M{"ad_ids": adID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return 0, translate(err)
	}
	return res.ModifiedCount, nil
}

func (r *CampaignRepository) CountByStatus(ctx context.Context, businessID, status string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"business_id": businessID, "status": status})
	return n, translate(err)
}
