package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// csvColumns is the export header. All matching rows are flattened, not just
// the current page.
var csvColumns = []string{
	"timestamp",
	"registration_id",
	"campaign_id",
	"ad_id",
	"source",
	"status",
	"lead_name",
	"lead_email",
	"lead_phone",
	"messages",
	"spent",
	"reach",
	"impressions",
	"clicks",
	"user_id",
	"business_id",
	"created_at",
	"updated_at",
}

// RegistrationUseCase implements port.RegistrationUseCase. Registrations are
// immutable after creation except for their status.
type RegistrationUseCase struct {
	registrations port.RegistrationRepository
}

// NewRegistrationUseCase creates the usecase with its repository.
func NewRegistrationUseCase(registrations port.RegistrationRepository) *RegistrationUseCase {
	return &RegistrationUseCase{registrations: registrations}
}

func (u *RegistrationUseCase) Create(ctx context.Context, businessID string, in port.RegistrationCreate) (*domain.Registration, error) {
	if err := checkPayload(in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = domain.RegistrationStatusNew
	}

	now := time.Now().UTC()
	reg := domain.Registration{
		RegistrationID: uuid.NewString(),
		BusinessID:     businessID,
		CampaignID:     in.CampaignID,
		AdID:           in.AdID,
		UserID:         in.UserID,
		LeadName:       strings.TrimSpace(in.LeadName),
		LeadEmail:      strings.TrimSpace(in.LeadEmail),
		LeadPhone:      strings.TrimSpace(in.LeadPhone),
		Source:         in.Source,
		Status:         in.Status,
		Cost:           in.Cost,
		Timestamp:      in.Timestamp.UTC(),
		Meta:           in.Meta,
		Messages:       in.Messages,
		Spent:          in.Spent,
		Reach:          in.Reach,
		Impressions:    in.Impressions,
		Clicks:         in.Clicks,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (u *RegistrationUseCase) Get(ctx context.Context, businessID, registrationID string) (*domain.Registration, error) {
	return u.registrations.Get(ctx, businessID, registrationID)
}

func (u *RegistrationUseCase) List(ctx context.Context, businessID string, f port.RegistrationFilter) (*port.Page[domain.Registration], error) {
	f.Page, f.PageSize = clampPage(f.Page, f.PageSize)
	return u.registrations.List(ctx, businessID, f)
}

func (u *RegistrationUseCase) UpdateStatus(ctx context.Context, businessID, registrationID, status string) (*domain.Registration, error) {
	if !contains(domain.RegistrationStatuses, status) {
		return nil, domain.NewValidationError("status", "must be one of: "+strings.Join(domain.RegistrationStatuses, " "))
	}
	return u.registrations.UpdateStatus(ctx, businessID, registrationID, status)
}

func (u *RegistrationUseCase) Delete(ctx context.Context, businessID, registrationID string) error {
	return u.registrations.Delete(ctx, businessID, registrationID)
}

// ExportCSV writes every registration matching the filter as CSV, header
// first. Pagination on the filter is ignored on purpose.
func (u *RegistrationUseCase) ExportCSV(ctx context.Context, businessID string, f port.RegistrationFilter, w io.Writer) error {
	regs, err := u.registrations.ListAll(ctx, businessID, f)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, reg := range regs {
		if err := cw.Write(csvRow(reg)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(reg domain.Registration) []string {
	return []string{
		reg.Timestamp.UTC().Format(time.RFC3339),
		reg.RegistrationID,
		reg.CampaignID,
		reg.AdID,
		reg.Source,
		reg.Status,
		reg.LeadName,
		reg.LeadEmail,
		reg.LeadPhone,
		strconv.FormatInt(reg.Messages, 10),
		strconv.FormatFloat(reg.Spent, 'f', -1, 64),
		strconv.FormatInt(reg.Reach, 10),
		strconv.FormatInt(reg.Impressions, 10),
		strconv.FormatInt(reg.Clicks, 10),
		reg.UserID,
		reg.BusinessID,
		reg.CreatedAt.UTC().Format(time.RFC3339),
		reg.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
