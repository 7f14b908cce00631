package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"adboard/internal/core/domain"
)

// SeedStats reports how many documents the seeder inserted.
type SeedStats struct {
	Businesses    int
	Ads           int
	Campaigns     int
	Registrations int
}

type seedAd struct {
	title string
	tags  []string
}

type seedCampaign struct {
	name   string
	status string
}

type seedTenant struct {
	businessID string
	name       string
	password   string
	ads        []seedAd
	campaigns  []seedCampaign
}

var seedTenants = []seedTenant{
	{
		businessID: "enchanments",
		name:       "Enchanments Wedding Decor",
		password:   "enchanments_pass",
		ads: []seedAd{
			{title: "Fairy Light Aisle Display", tags: []string{"lighting", "aisle"}},
			{title: "Garden Reception Setup", tags: []string{"outdoor", "reception"}},
			{title: "Luxury Table Centerpieces", tags: []string{"centerpiece", "luxury"}},
		},
		campaigns: []seedCampaign{
			{name: "Spring Garden Weddings", status: domain.CampaignStatusActive},
			{name: "Gold Elegance Collection", status: domain.CampaignStatusActive},
			{name: "Evergreen Venue Partnerships", status: domain.CampaignStatusPaused},
		},
	},
	{
		businessID: "luxury_floor_wraps",
		name:       "Luxury Floor Wraps",
		password:   "luxury_pass",
		ads: []seedAd{
			{title: "Custom Dance Floor Reveal", tags: []string{"dancefloor", "custom"}},
			{title: "Monogrammed Floor Showcase", tags: []string{"monogram", "branding"}},
			{title: "Event Entry Statement", tags: []string{"entry", "branding"}},
		},
		campaigns: []seedCampaign{
			{name: "Signature Ballroom Series", status: domain.CampaignStatusActive},
			{name: "Corporate Launch Highlights", status: domain.CampaignStatusDraft},
			{name: "Boutique Venue Partnerships", status: domain.CampaignStatusActive},
		},
	},
}

var seedSources = []string{"facebook", "google", "organic", "email", "referral"}

// Seed inserts the demo tenants with sample ads, campaigns and roughly a
// month of randomized registrations. It is idempotent per collection: tenants
// that already exist are skipped, and per-tenant ads/campaigns/registrations
// are only created when the tenant has none yet.
func Seed(ctx context.Context, db *mongo.Database, registrations int) (SeedStats, error) {
	var stats SeedStats
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for _, tenant := range seedTenants {
		n, err := db.Collection(CollBusinesses).CountDocuments(ctx, bson.M{"business_id": tenant.businessID})
		if err != nil {
			return stats, err
		}
		if n > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(tenant.password), bcrypt.DefaultCost)
		if err != nil {
			return stats, err
		}
		_, err = db.Collection(CollBusinesses).InsertOne(ctx, domain.Business{
			BusinessID:   tenant.businessID,
			Name:         tenant.name,
			PasswordHash: string(hash),
			CreatedAt:    now,
		})
		if err != nil {
			return stats, err
		}
		stats.Businesses++
	}

	perTenant := registrations / len(seedTenants)
	if perTenant < 1 {
		perTenant = 1
	}

	for _, tenant := range seedTenants {
		adIDs, created, err := seedAds(ctx, db, tenant, now)
		if err != nil {
			return stats, err
		}
		stats.Ads += created

		campaignIDs, created, err := seedCampaigns(ctx, db, tenant, adIDs, now)
		if err != nil {
			return stats, err
		}
		stats.Campaigns += created

		if len(campaignIDs) == 0 || len(adIDs) == 0 {
			continue
		}

		n, err := db.Collection(CollRegistrations).CountDocuments(ctx, bson.M{"business_id": tenant.businessID})
		if err != nil {
			return stats, err
		}
		if n > 0 {
			continue
		}

		for i := 0; i < perTenant; i++ {
			campaignID := campaignIDs[r.Intn(len(campaignIDs))]
			adID := adIDs[r.Intn(len(adIDs))]
			ts := now.Add(-time.Duration(r.Intn(21)+10)*24*time.Hour -
				time.Duration(r.Intn(24))*time.Hour -
				time.Duration(r.Intn(60))*time.Minute)
			impressions := int64(r.Intn(4500) + 500)
			clicks := int64(r.Intn(int(impressions) + 1))
			spent := float64(r.Intn(35000)+5000) / 100

			reg := domain.Registration{
				RegistrationID: uuid.NewString(),
				BusinessID:     tenant.businessID,
				CampaignID:     campaignID,
				AdID:           adID,
				UserID:         fmt.Sprintf("user-%d", r.Intn(100)+1),
				Source:         seedSources[r.Intn(len(seedSources))],
				Status:         domain.RegistrationStatusNew,
				Cost:           spent,
				Timestamp:      ts,
				Meta:           map[string]string{"utm_campaign": campaignID},
				Messages:       int64(r.Intn(11)),
				Spent:          spent,
				Reach:          int64(r.Intn(int(impressions)-199) + 200),
				Impressions:    impressions,
				Clicks:         clicks,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if _, err := db.Collection(CollRegistrations).InsertOne(ctx, reg); err != nil {
				return stats, err
			}
			stats.Registrations++
		}
	}

	return stats, nil
}

func seedAds(ctx context.Context, db *mongo.Database, tenant seedTenant, now time.Time) ([]string, int, error) {
	coll := db.Collection(CollAds)

	n, err := coll.CountDocuments(ctx, bson.M{"business_id": tenant.businessID})
	if err != nil {
		return nil, 0, err
	}
	if n > 0 {
		return existingIDs(ctx, coll, tenant.businessID, "ad_id")
	}

	ids := make([]string, 0, len(tenant.ads))
	for _, tpl := range tenant.ads {
		ad := domain.Ad{
			AdID:       uuid.NewString(),
			BusinessID: tenant.businessID,
			Title:      tpl.title,
			Status:     domain.AdStatusActive,
			Tags:       tpl.tags,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := coll.InsertOne(ctx, ad); err != nil {
			return nil, 0, err
		}
		ids = append(ids, ad.AdID)
	}
	return ids, len(ids), nil
}

func seedCampaigns(ctx context.Context, db *mongo.Database, tenant seedTenant, adIDs []string, now time.Time) ([]string, int, error) {
	coll := db.Collection(CollCampaigns)

	n, err := coll.CountDocuments(ctx, bson.M{"business_id": tenant.businessID})
	if err != nil {
		return nil, 0, err
	}
	if n > 0 {
		return existingIDs(ctx, coll, tenant.businessID, "campaign_id")
	}

	ids := make([]string, 0, len(tenant.campaigns))
	for i, tpl := range tenant.campaigns {
		// distribute ads round-robin across campaigns
		var attached []string
		for j := i; j < len(adIDs); j += len(tenant.campaigns) {
			attached = append(attached, adIDs[j])
		}
		c := domain.Campaign{
			CampaignID: uuid.NewString(),
			BusinessID: tenant.businessID,
			Name:       tpl.name,
			Status:     tpl.status,
			AdIDs:      attached,
			Targeting: domain.Targeting{
				Locations:   []string{"NY", "NJ", "CT"},
				Interests:   []string{"weddings", "events"},
				Devices:     []string{"mobile", "desktop"},
				BudgetDaily: 150.0,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := coll.InsertOne(ctx, c); err != nil {
			return nil, 0, err
		}
		ids = append(ids, c.CampaignID)
	}
	return ids, len(ids), nil
}

func existingIDs(ctx context.Context, coll *mongo.Collection, businessID, field string) ([]string, int, error) {
	cur, err := coll.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, err
		}
		if id, ok := doc[field].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, 0, cur.Err()
}
