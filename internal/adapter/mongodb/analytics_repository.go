package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"adboard/internal/core/port"
	"adboard/internal/db"
)

// AnalyticsRepository implements port.AnalyticsRepository with aggregation
// pipelines over the registrations collection.
type AnalyticsRepository struct {
	coll *mongo.Collection
}

// NewAnalyticsRepository returns an analytics repository over the
// registrations collection.
func NewAnalyticsRepository(database *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{coll: database.Collection(db.CollRegistrations)}
}

// totalsDoc mirrors the group-stage output. Ratios are derived in the
// usecase layer, not in the pipeline.
type totalsDoc struct {
	Registrations int64   `bson:"registrations"`
	Messages      int64   `bson:"messages"`
	Spent         float64 `bson:"spent"`
	Reach         int64   `bson:"reach"`
	Impressions   int64   `bson:"impressions"`
	Clicks        int64   `bson:"clicks"`
	AdsServed     int64   `bson:"ads_served"`
}

func (d totalsDoc) totals() port.Totals {
	return port.Totals{
		Registrations: d.Registrations,
		Messages:      d.Messages,
		Spent:         d.Spent,
		Reach:         d.Reach,
		Impressions:   d.Impressions,
		Clicks:        d.Clicks,
		AdsServed:     d.AdsServed,
	}
}

func sumIfNull(field string) bson.M {
	return bson.M{"$sum": bson.M{"$ifNull": bson.A{"$" + field, 0}}}
}

// groupSums returns the shared accumulator set; $ifNull keeps documents
// seeded before a metric existed from poisoning the sums. Older documents
// report spend under cost, so spent falls back to it.
func groupSums() bson.M {
	return bson.M{
		"registrations": bson.M{"$sum": 1},
		"messages":      sumIfNull("messages"),
		"spent": bson.M{"$sum": bson.M{"$ifNull": bson.A{
			"$spent", bson.M{"$ifNull": bson.A{"$cost", 0}},
		}}},
		"reach":       sumIfNull("reach"),
		"impressions": sumIfNull("impressions"),
		"clicks":      sumIfNull("clicks"),
	}
}

// dateTrunc builds the bucket key expression. Weeks are pinned to Monday to
// match the gap-filled buckets the usecase generates; the server default is
// Sunday.
func dateTrunc(granularity string) bson.M {
	trunc := bson.M{
		"date":     "$timestamp",
		"unit":     granularity,
		"timezone": "UTC",
	}
	if granularity == port.GranularityWeek {
		trunc["startOfWeek"] = "monday"
	}
	return bson.M{"$dateTrunc": trunc}
}

func projectSums() bson.M {
	return bson.M{
		"registrations": 1,
		"messages":      1,
		"spent":         1,
		"reach":         1,
		"impressions":   1,
		"clicks":        1,
	}
}

func analyticsMatch(businessID string, rng port.TimeRange, f port.AnalyticsFilter) bson.M {
	match := bson.M{"business_id": businessID}
	if !rng.IsZero() {
		match["timestamp"] = timeRangeQuery(rng)
	}
	if len(f.CampaignIDs) > 0 {
		match["campaign_id"] = bson.M{"$in": f.CampaignIDs}
	}
	if len(f.AdIDs) > 0 {
		match["ad_id"] = bson.M{"$in": f.AdIDs}
	}
	if len(f.Sources) > 0 {
		match["source"] = bson.M{"$in": f.Sources}
	}
	return match
}

func (r *AnalyticsRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return translate(err)
	}
	return translate(cur.All(ctx, out))
}

func (r *AnalyticsRepository) Totals(ctx context.Context, businessID string, rng port.TimeRange, f port.AnalyticsFilter) (*port.Totals, error) {
	group := groupSums()
	group["_id"] = nil
	group["ads"] = bson.M{"$addToSet": "$ad_id"}

	project := projectSums()
	project["_id"] = 0
	project["ads_served"] = bson.M{"$size": bson.M{"$filter": bson.M{
		"input": "$ads",
		"as":    "a",
		"cond": bson.M{"$and": bson.A{
			bson.M{"$ne": bson.A{"$$a", nil}},
			bson.M{"$ne": bson.A{"$$a", ""}},
		}},
	}}}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: analyticsMatch(businessID, rng, f)}},
		{{Key: "$group", Value: group}},
		{{Key: "$project", Value: project}},
	}

	var docs []totalsDoc
	if err := r.aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return &port.Totals{}, nil
	}
	totals := docs[0].totals()
	return &totals, nil
}

func (r *AnalyticsRepository) SeriesBuckets(ctx context.Context, businessID, granularity string, rng port.TimeRange, f port.AnalyticsFilter) ([]port.SeriesBucket, error) {
	group := groupSums()
	group["_id"] = dateTrunc(granularity)

	project := projectSums()
	project["_id"] = 0
	project["start"] = "$_id"

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: analyticsMatch(businessID, rng, f)}},
		{{Key: "$group", Value: group}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: project}},
	}

	var docs []struct {
		Start     time.Time `bson:"start"`
		totalsDoc `bson:",inline"`
	}
	if err := r.aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	buckets := make([]port.SeriesBucket, 0, len(docs))
	for _, d := range docs {
		buckets = append(buckets, port.SeriesBucket{Start: d.Start.UTC(), Totals: d.totals()})
	}
	return buckets, nil
}

func (r *AnalyticsRepository) CampaignRollup(ctx context.Context, businessID string, rng port.TimeRange, f port.AnalyticsFilter) ([]port.CampaignStats, error) {
	group := groupSums()
	group["_id"] = "$campaign_id"

	project := projectSums()
	project["_id"] = 0
	project["campaign_id"] = "$_id"
	project["name"] = "$campaign.name"
	project["status"] = "$campaign.status"

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: analyticsMatch(businessID, rng, f)}},
		{{Key: "$group", Value: group}},
		// join campaign metadata, scoped to the same tenant
		{{Key: "$lookup", Value: bson.M{
			"from": db.CollCampaigns,
			"let":  bson.M{"campaign_id": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$campaign_id", "$$campaign_id"}},
					bson.M{"$eq": bson.A{"$business_id", businessID}},
				}}}},
			},
			"as": "campaign",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$campaign", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: project}},
		{{Key: "$sort", Value: bson.D{{Key: "registrations", Value: -1}}}},
	}

	var docs []struct {
		CampaignID string `bson:"campaign_id"`
		Name       string `bson:"name"`
		Status     string `bson:"status"`
		totalsDoc  `bson:",inline"`
	}
	if err := r.aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	rows := make([]port.CampaignStats, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, port.CampaignStats{
			CampaignID: d.CampaignID,
			Name:       d.Name,
			Status:     d.Status,
			Totals:     d.totals(),
		})
	}
	return rows, nil
}

func (r *AnalyticsRepository) AdPerformance(ctx context.Context, businessID string, rng port.TimeRange, campaignID string) ([]port.AdStats, error) {
	match := analyticsMatch(businessID, rng, port.AnalyticsFilter{})
	match["ad_id"] = bson.M{"$nin": bson.A{nil, ""}}
	if campaignID != "" {
		match["campaign_id"] = campaignID
	}

	group := groupSums()
	group["_id"] = "$ad_id"

	project := projectSums()
	project["_id"] = 0
	project["ad_id"] = "$_id"
	project["title"] = "$ad.title"
	project["status"] = "$ad.status"
	project["tags"] = "$ad.tags"

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: group}},
		// join ad metadata, scoped to the same tenant
		{{Key: "$lookup", Value: bson.M{
			"from": db.CollAds,
			"let":  bson.M{"ad_id": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$ad_id", "$$ad_id"}},
					bson.M{"$eq": bson.A{"$business_id", businessID}},
				}}}},
			},
			"as": "ad",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$ad", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: project}},
		{{Key: "$sort", Value: bson.D{{Key: "registrations", Value: -1}}}},
	}

	var docs []struct {
		AdID      string   `bson:"ad_id"`
		Title     string   `bson:"title"`
		Status    string   `bson:"status"`
		Tags      []string `bson:"tags"`
		totalsDoc `bson:",inline"`
	}
	if err := r.aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	rows := make([]port.AdStats, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, port.AdStats{
			AdID:   d.AdID,
			Title:  d.Title,
			Status: d.Status,
			Tags:   d.Tags,
			Totals: d.totals(),
		})
	}
	return rows, nil
}
