package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase. It owns the soft relation
// between campaigns and ads: attaching verifies ad ownership first, since the
// database enforces no referential integrity.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	ads       port.AdRepository
}

// NewCampaignUseCase creates the usecase with its repositories.
func NewCampaignUseCase(campaigns port.CampaignRepository, ads port.AdRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, ads: ads}
}

func (u *CampaignUseCase) Create(ctx context.Context, businessID string, in port.CampaignCreate) (*domain.Campaign, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := checkPayload(in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = domain.CampaignStatusDraft
	}

	adIDs := dedupe(in.AdIDs)
	if err := u.verifyAdOwnership(ctx, businessID, adIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := domain.Campaign{
		CampaignID: uuid.NewString(),
		BusinessID: businessID,
		Name:       in.Name,
		Status:     in.Status,
		AdIDs:      adIDs,
		Targeting:  in.Targeting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (u *CampaignUseCase) Get(ctx context.Context, businessID, campaignID string) (*domain.Campaign, error) {
	return u.campaigns.Get(ctx, businessID, campaignID)
}

func (u *CampaignUseCase) List(ctx context.Context, businessID string, f port.CampaignFilter) (*port.Page[domain.Campaign], error) {
	if f.Status != "" && !contains(domain.CampaignStatuses, f.Status) {
		return nil, domain.NewValidationError("status", "must be one of: "+strings.Join(domain.CampaignStatuses, " "))
	}
	f.Page, f.PageSize = clampPage(f.Page, f.PageSize)
	return u.campaigns.List(ctx, businessID, f)
}

func (u *CampaignUseCase) Update(ctx context.Context, businessID, campaignID string, in port.CampaignUpdate) (*domain.Campaign, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if err := checkPayload(in); err != nil {
		return nil, err
	}
	if in.Name == nil && in.Status == nil && in.Targeting == nil {
		return nil, domain.NewValidationError("payload", "nothing to update")
	}
	patch := port.CampaignPatch{Name: in.Name, Status: in.Status, Targeting: in.Targeting}
	return u.campaigns.Update(ctx, businessID, campaignID, patch)
}

func (u *CampaignUseCase) Delete(ctx context.Context, businessID, campaignID string) error {
	return u.campaigns.Delete(ctx, businessID, campaignID)
}

func (u *CampaignUseCase) AttachAds(ctx context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error) {
	adIDs = dedupe(adIDs)
	if len(adIDs) == 0 {
		return nil, domain.NewValidationError("ad_ids", "no ads selected")
	}
	if err := u.verifyAdOwnership(ctx, businessID, adIDs); err != nil {
		return nil, err
	}
	return u.campaigns.AttachAds(ctx, businessID, campaignID, adIDs)
}

func (u *CampaignUseCase) DetachAds(ctx context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error) {
	adIDs = dedupe(adIDs)
	if len(adIDs) == 0 {
		return nil, domain.NewValidationError("ad_ids", "no ads selected")
	}
	return u.campaigns.DetachAds(ctx, businessID, campaignID, adIDs)
}

// verifyAdOwnership rejects the operation unless every ad id exists under
// the tenant. Cross-tenant ids fail the same way as unknown ones.
func (u *CampaignUseCase) verifyAdOwnership(ctx context.Context, businessID string, adIDs []string) error {
	if len(adIDs) == 0 {
		return nil
	}
	n, err := u.ads.CountByIDs(ctx, businessID, adIDs)
	if err != nil {
		return err
	}
	if n != int64(len(adIDs)) {
		return domain.NewValidationError("ad_ids", "one or more ads do not belong to this business")
	}
	return nil
}
