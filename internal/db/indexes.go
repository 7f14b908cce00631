package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names backing the dashboard.
const (
	CollBusinesses    = "businesses"
	CollAds           = "ads"
	CollCampaigns     = "campaigns"
	CollRegistrations = "registrations"
)

// EnsureIndexes creates the indexes required by the repository and analytics
// layers if they do not exist yet. It is idempotent and safe to call on every
// process start: MongoDB treats creating an identical index as a no-op. The
// unique compound indexes on (business_id, <entity>_id) double as the tenant
// isolation guard for point lookups.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CollBusinesses: {
			{
				Keys:    bson.D{{Key: "business_id", Value: 1}},
				Options: options.Index().SetName("idx_business_id").SetUnique(true),
			},
		},
		CollAds: {
			{
				Keys:    bson.D{{Key: "business_id", Value: 1}, {Key: "ad_id", Value: 1}},
				Options: options.Index().SetName("idx_ads_business_ad").SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "business_id", Value: 1},
					{Key: "status", Value: 1},
					{Key: "updated_at", Value: -1},
				},
				Options: options.Index().SetName("idx_ads_business_status_updated"),
			},
		},
		CollCampaigns: {
			{
				Keys:    bson.D{{Key: "business_id", Value: 1}, {Key: "campaign_id", Value: 1}},
				Options: options.Index().SetName("idx_campaigns_business_campaign").SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "business_id", Value: 1},
					{Key: "status", Value: 1},
					{Key: "updated_at", Value: -1},
				},
				Options: options.Index().SetName("idx_campaigns_business_status_updated"),
			},
		},
		CollRegistrations: {
			{
				Keys: bson.D{
					{Key: "business_id", Value: 1},
					{Key: "campaign_id", Value: 1},
					{Key: "ad_id", Value: 1},
					{Key: "timestamp", Value: -1},
				},
				Options: options.Index().SetName("idx_registrations_business_campaign_ad_ts"),
			},
			{
				Keys:    bson.D{{Key: "business_id", Value: 1}, {Key: "registration_id", Value: 1}},
				Options: options.Index().SetName("idx_registrations_business_reg").SetUnique(true),
			},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
