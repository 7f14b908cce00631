package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// AdUseCase implements port.AdUseCase. Deleting an ad cascades into the
// campaigns collection: the id is pulled from every campaign referencing it.
type AdUseCase struct {
	ads       port.AdRepository
	campaigns port.CampaignRepository
}

// NewAdUseCase creates the usecase with its repositories.
func NewAdUseCase(ads port.AdRepository, campaigns port.CampaignRepository) *AdUseCase {
	return &AdUseCase{ads: ads, campaigns: campaigns}
}

func (u *AdUseCase) Create(ctx context.Context, businessID string, in port.AdCreate) (*domain.Ad, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := checkPayload(in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = domain.AdStatusActive
	}

	now := time.Now().UTC()
	a := domain.Ad{
		AdID:        uuid.NewString(),
		BusinessID:  businessID,
		Title:       in.Title,
		Status:      in.Status,
		CreativeURL: in.CreativeURL,
		Tags:        normalizeTags(in.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.ads.Create(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (u *AdUseCase) Get(ctx context.Context, businessID, adID string) (*domain.Ad, error) {
	return u.ads.Get(ctx, businessID, adID)
}

func (u *AdUseCase) List(ctx context.Context, businessID string, f port.AdFilter) (*port.Page[domain.Ad], error) {
	if f.Status != "" && !contains(domain.AdStatuses, f.Status) {
		return nil, domain.NewValidationError("status", "must be one of: "+strings.Join(domain.AdStatuses, " "))
	}
	f.Tags = normalizeTags(f.Tags)
	f.Page, f.PageSize = clampPage(f.Page, f.PageSize)
	return u.ads.List(ctx, businessID, f)
}

func (u *AdUseCase) Update(ctx context.Context, businessID, adID string, in port.AdUpdate) (*domain.Ad, error) {
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		in.Title = &trimmed
	}
	if err := checkPayload(in); err != nil {
		return nil, err
	}
	if in.Title == nil && in.Status == nil && in.CreativeURL == nil && in.Tags == nil {
		return nil, domain.NewValidationError("payload", "nothing to update")
	}
	if in.Tags != nil {
		tags := normalizeTags(*in.Tags)
		in.Tags = &tags
	}
	patch := port.AdPatch{Title: in.Title, Status: in.Status, CreativeURL: in.CreativeURL, Tags: in.Tags}
	return u.ads.Update(ctx, businessID, adID, patch)
}

// Delete removes the ad, then detaches it from every campaign of the tenant
// that references it. The two writes are not transactional: when the detach
// fails after a successful delete, the error is a PartialFailureError and the
// delete stands.
func (u *AdUseCase) Delete(ctx context.Context, businessID, adID string) error {
	if err := u.ads.Delete(ctx, businessID, adID); err != nil {
		return err
	}
	if _, err := u.campaigns.DetachAdFromAll(ctx, businessID, adID); err != nil {
		return &domain.PartialFailureError{Op: "ad delete cascade", Err: err}
	}
	return nil
}
