package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// In-memory repository fakes mirroring the tenant-scoping and ordering
// semantics of the mongodb adapter.

type fakeCampaignRepo struct {
	mu        sync.Mutex
	items     []domain.Campaign
	detachErr error
}

func (f *fakeCampaignRepo) Create(_ context.Context, c domain.Campaign) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.BusinessID == c.BusinessID && existing.CampaignID == c.CampaignID {
			return domain.ErrConflict
		}
	}
	f.items = append(f.items, c)
	return nil
}

func (f *fakeCampaignRepo) Get(_ context.Context, businessID, campaignID string) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID == businessID && f.items[i].CampaignID == campaignID {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCampaignRepo) List(_ context.Context, businessID string, fl port.CampaignFilter) (*port.Page[domain.Campaign], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []domain.Campaign{}
	for _, c := range f.items {
		if c.BusinessID != businessID {
			continue
		}
		if fl.Status != "" && c.Status != fl.Status {
			continue
		}
		if fl.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(fl.Search)) {
			continue
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return pageOf(matched, fl.Page, fl.PageSize), nil
}

func (f *fakeCampaignRepo) Update(_ context.Context, businessID, campaignID string, patch port.CampaignPatch) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID != businessID || f.items[i].CampaignID != campaignID {
			continue
		}
		if patch.Name != nil {
			f.items[i].Name = *patch.Name
		}
		if patch.Status != nil {
			f.items[i].Status = *patch.Status
		}
		if patch.Targeting != nil {
			f.items[i].Targeting = *patch.Targeting
		}
		f.items[i].UpdatedAt = time.Now().UTC()
		c := f.items[i]
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCampaignRepo) Delete(_ context.Context, businessID, campaignID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID == businessID && f.items[i].CampaignID == campaignID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCampaignRepo) AttachAds(_ context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID != businessID || f.items[i].CampaignID != campaignID {
			continue
		}
		for _, id := range adIDs {
			if !containsStr(f.items[i].AdIDs, id) {
				f.items[i].AdIDs = append(f.items[i].AdIDs, id)
			}
		}
		f.items[i].UpdatedAt = time.Now().UTC()
		c := f.items[i]
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCampaignRepo) DetachAds(_ context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID != businessID || f.items[i].CampaignID != campaignID {
			continue
		}
		f.items[i].AdIDs = removeAll(f.items[i].AdIDs, adIDs)
		f.items[i].UpdatedAt = time.Now().UTC()
		c := f.items[i]
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCampaignRepo) DetachAdFromAll(_ context.Context, businessID, adID string) (int64, error) {
	if f.detachErr != nil {
		return 0, f.detachErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var modified int64
	for i := range f.items {
		if f.items[i].BusinessID != businessID || !containsStr(f.items[i].AdIDs, adID) {
			continue
		}
		f.items[i].AdIDs = removeAll(f.items[i].AdIDs, []string{adID})
		f.items[i].UpdatedAt = time.Now().UTC()
		modified++
	}
	return modified, nil
}

func (f *fakeCampaignRepo) CountByStatus(_ context.Context, businessID, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.items {
		if c.BusinessID == businessID && c.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeAdRepo struct {
	mu    sync.Mutex
	items []domain.Ad
}

func (f *fakeAdRepo) Create(_ context.Context, a domain.Ad) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.BusinessID == a.BusinessID && existing.AdID == a.AdID {
			return domain.ErrConflict
		}
	}
	f.items = append(f.items, a)
	return nil
}

func (f *fakeAdRepo) Get(_ context.Context, businessID, adID string) (*domain.Ad, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID == businessID && f.items[i].AdID == adID {
			a := f.items[i]
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAdRepo) List(_ context.Context, businessID string, fl port.AdFilter) (*port.Page[domain.Ad], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []domain.Ad{}
	for _, a := range f.items {
		if a.BusinessID != businessID {
			continue
		}
		if fl.Status != "" && a.Status != fl.Status {
			continue
		}
		if fl.Search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(fl.Search)) {
			continue
		}
		if !hasAllTags(a.Tags, fl.Tags) {
			continue
		}
		matched = append(matched, a)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return pageOf(matched, fl.Page, fl.PageSize), nil
}

func (f *fakeAdRepo) Update(_ context.Context, businessID, adID string, patch port.AdPatch) (*domain.Ad, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID != businessID || f.items[i].AdID != adID {
			continue
		}
		if patch.Title != nil {
			f.items[i].Title = *patch.Title
		}
		if patch.Status != nil {
			f.items[i].Status = *patch.Status
		}
		if patch.CreativeURL != nil {
			f.items[i].CreativeURL = *patch.CreativeURL
		}
		if patch.Tags != nil {
			f.items[i].Tags = *patch.Tags
		}
		f.items[i].UpdatedAt = time.Now().UTC()
		a := f.items[i]
		return &a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAdRepo) Delete(_ context.Context, businessID, adID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID == businessID && f.items[i].AdID == adID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeAdRepo) CountByIDs(_ context.Context, businessID string, adIDs []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.items {
		if a.BusinessID == businessID && containsStr(adIDs, a.AdID) {
			n++
		}
	}
	return n, nil
}

type fakeRegistrationRepo struct {
	mu    sync.Mutex
	items []domain.Registration
}

func (f *fakeRegistrationRepo) Create(_ context.Context, r domain.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, r)
	return nil
}

func (f *fakeRegistrationRepo) Get(_ context.Context, businessID, registrationID string) (*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID == businessID && f.items[i].RegistrationID == registrationID {
			r := f.items[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) matchAll(businessID string, fl port.RegistrationFilter) []domain.Registration {
	matched := []domain.Registration{}
	for _, r := range f.items {
		if r.BusinessID != businessID {
			continue
		}
		if len(fl.CampaignIDs) > 0 && !containsStr(fl.CampaignIDs, r.CampaignID) {
			continue
		}
		if len(fl.AdIDs) > 0 && !containsStr(fl.AdIDs, r.AdID) {
			continue
		}
		if len(fl.Sources) > 0 && !containsStr(fl.Sources, r.Source) {
			continue
		}
		if len(fl.Statuses) > 0 && !containsStr(fl.Statuses, r.Status) {
			continue
		}
		if !fl.Range.From.IsZero() && r.Timestamp.Before(fl.Range.From) {
			continue
		}
		if !fl.Range.To.IsZero() && r.Timestamp.After(fl.Range.To) {
			continue
		}
		matched = append(matched, r)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	return matched
}

func (f *fakeRegistrationRepo) List(_ context.Context, businessID string, fl port.RegistrationFilter) (*port.Page[domain.Registration], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return pageOf(f.matchAll(businessID, fl), fl.Page, fl.PageSize), nil
}

func (f *fakeRegistrationRepo) UpdateStatus(_ context.Context, businessID, registrationID, status string) (*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID == businessID && f.items[i].RegistrationID == registrationID {
			f.items[i].Status = status
			f.items[i].UpdatedAt = time.Now().UTC()
			r := f.items[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) Delete(_ context.Context, businessID, registrationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].BusinessID == businessID && f.items[i].RegistrationID == registrationID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRegistrationRepo) ListAll(_ context.Context, businessID string, fl port.RegistrationFilter) ([]domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.matchAll(businessID, fl), nil
}

type fakeAnalyticsRepo struct {
	totals   port.Totals
	buckets  []port.SeriesBucket
	rollup   []port.CampaignStats
	adRows   []port.AdStats
	lastRng  port.TimeRange
	lastGran string
}

func (f *fakeAnalyticsRepo) Totals(_ context.Context, _ string, rng port.TimeRange, _ port.AnalyticsFilter) (*port.Totals, error) {
	f.lastRng = rng
	t := f.totals
	return &t, nil
}

func (f *fakeAnalyticsRepo) SeriesBuckets(_ context.Context, _, granularity string, rng port.TimeRange, _ port.AnalyticsFilter) ([]port.SeriesBucket, error) {
	f.lastRng = rng
	f.lastGran = granularity
	return f.buckets, nil
}

func (f *fakeAnalyticsRepo) CampaignRollup(_ context.Context, _ string, _ port.TimeRange, _ port.AnalyticsFilter) ([]port.CampaignStats, error) {
	return f.rollup, nil
}

func (f *fakeAnalyticsRepo) AdPerformance(_ context.Context, _ string, _ port.TimeRange, _ string) ([]port.AdStats, error) {
	return f.adRows, nil
}

func pageOf[T any](matched []T, page, pageSize int) *port.Page[T] {
	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return &port.Page[T]{Items: matched[start:end], Total: total, Page: page, PageSize: pageSize}
}

func containsStr(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func removeAll(list, remove []string) []string {
	out := list[:0]
	for _, s := range list {
		if !containsStr(remove, s) {
			out = append(out, s)
		}
	}
	return out
}

func hasAllTags(tags, want []string) bool {
	for _, w := range want {
		if !containsStr(tags, w) {
			return false
		}
	}
	return true
}
