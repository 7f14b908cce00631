package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

func TestAdCreateDefaultsToActive(t *testing.T) {
	u := NewAdUseCase(&fakeAdRepo{}, &fakeCampaignRepo{})

	a, err := u.Create(context.Background(), "enchanments", port.AdCreate{
		Title: "  Banner A  ",
		Tags:  []string{" summer ", "sale", ""},
	})
	require.NoError(t, err)
	require.Equal(t, "Banner A", a.Title)
	require.Equal(t, domain.AdStatusActive, a.Status)
	require.Equal(t, []string{"summer", "sale"}, a.Tags)
	require.NotEmpty(t, a.AdID)
}

func TestAdCreateRejectsBadCreativeURL(t *testing.T) {
	u := NewAdUseCase(&fakeAdRepo{}, &fakeCampaignRepo{})

	_, err := u.Create(context.Background(), "enchanments", port.AdCreate{
		Title:       "Banner",
		CreativeURL: "not a url",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "creative_url")
}

func TestAdListFiltersByTags(t *testing.T) {
	adRepo := &fakeAdRepo{}
	u := NewAdUseCase(adRepo, &fakeCampaignRepo{})
	ctx := context.Background()

	_, err := u.Create(ctx, "enchanments", port.AdCreate{Title: "A", Tags: []string{"summer", "sale"}})
	require.NoError(t, err)
	_, err = u.Create(ctx, "enchanments", port.AdCreate{Title: "B", Tags: []string{"summer"}})
	require.NoError(t, err)

	page, err := u.List(ctx, "enchanments", port.AdFilter{Tags: []string{"summer", "sale"}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "A", page.Items[0].Title)
}

func TestAdGetIsTenantScoped(t *testing.T) {
	adRepo := &fakeAdRepo{}
	u := NewAdUseCase(adRepo, &fakeCampaignRepo{})
	ctx := context.Background()

	a, err := u.Create(ctx, "enchanments", port.AdCreate{Title: "Banner"})
	require.NoError(t, err)

	_, err = u.Get(ctx, "luxury_floor_wraps", a.AdID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdDeleteDetachesFromCampaigns(t *testing.T) {
	adRepo := &fakeAdRepo{}
	campaignRepo := &fakeCampaignRepo{}
	adUC := NewAdUseCase(adRepo, campaignRepo)
	campaignUC := NewCampaignUseCase(campaignRepo, adRepo)
	ctx := context.Background()

	a := mustCreateAd(t, adUC, "enchanments", "Banner A")
	keep := mustCreateAd(t, adUC, "enchanments", "Banner B")

	c1, err := campaignUC.Create(ctx, "enchanments", port.CampaignCreate{Name: "One", AdIDs: []string{a.AdID, keep.AdID}})
	require.NoError(t, err)
	c2, err := campaignUC.Create(ctx, "enchanments", port.CampaignCreate{Name: "Two", AdIDs: []string{a.AdID}})
	require.NoError(t, err)

	require.NoError(t, adUC.Delete(ctx, "enchanments", a.AdID))

	_, err = adUC.Get(ctx, "enchanments", a.AdID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err := campaignUC.Get(ctx, "enchanments", c1.CampaignID)
	require.NoError(t, err)
	require.Equal(t, []string{keep.AdID}, got.AdIDs)

	got, err = campaignUC.Get(ctx, "enchanments", c2.CampaignID)
	require.NoError(t, err)
	require.Empty(t, got.AdIDs)
}

func TestAdDeletePartialCascadeFailure(t *testing.T) {
	adRepo := &fakeAdRepo{}
	campaignRepo := &fakeCampaignRepo{detachErr: errors.New("write concern timeout")}
	u := NewAdUseCase(adRepo, campaignRepo)
	ctx := context.Background()

	a, err := u.Create(ctx, "enchanments", port.AdCreate{Title: "Banner"})
	require.NoError(t, err)

	err = u.Delete(ctx, "enchanments", a.AdID)
	var pf *domain.PartialFailureError
	require.ErrorAs(t, err, &pf)
	require.Equal(t, "ad delete cascade", pf.Op)

	// the delete itself stands
	_, err = u.Get(ctx, "enchanments", a.AdID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdDeleteNotFound(t *testing.T) {
	u := NewAdUseCase(&fakeAdRepo{}, &fakeCampaignRepo{})

	err := u.Delete(context.Background(), "enchanments", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdUpdateNormalizesTags(t *testing.T) {
	adRepo := &fakeAdRepo{}
	u := NewAdUseCase(adRepo, &fakeCampaignRepo{})
	ctx := context.Background()

	a, err := u.Create(ctx, "enchanments", port.AdCreate{Title: "Banner"})
	require.NoError(t, err)

	tags := []string{" new ", "", "promo"}
	updated, err := u.Update(ctx, "enchanments", a.AdID, port.AdUpdate{Tags: &tags})
	require.NoError(t, err)
	require.Equal(t, []string{"new", "promo"}, updated.Tags)
}
