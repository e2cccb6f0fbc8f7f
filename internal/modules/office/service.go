package office

import (
	"context"
	"errors"
	"log"

	"officemarket/internal/domain"
	"officemarket/internal/pkg/validator"
	"officemarket/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	offices OfficeRepository
	tags    TagRepository
	notifs  NotificationSender
}

func NewService(offices OfficeRepository, tags TagRepository, notifs NotificationSender) *Service {
	return &Service{
		offices: offices,
		tags:    tags,
		notifs:  notifs,
	}
}

func (s *Service) List(ctx context.Context, f repository.OfficeFilters) ([]domain.Office, int64, error) {
	return s.offices.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Office, error) {
	office, err := s.offices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return office, nil
}

// Create validates the payload, persists the office with its tag
// associations atomically and returns it with relations loaded. The actor
// needs the office.create scope; the new office starts pending approval.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateOfficeRequest) (*domain.Office, error) {
	if !actor.Can(domain.ScopeOfficeCreate) {
		return nil, ErrForbidden
	}

	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	office := &domain.Office{
		UserID:         actor.UserID,
		Title:          req.Title,
		Description:    req.Description,
		Lat:            *req.Lat,
		Lng:            *req.Lng,
		AddressLine1:   req.AddressLine1,
		PricePerDay:    *req.PricePerDay,
		ApprovalStatus: domain.ApprovalPending,
	}
	if req.MonthlyDiscount != nil {
		office.MonthlyDiscount = *req.MonthlyDiscount
	}
	if req.Hidden != nil {
		office.Hidden = *req.Hidden
	}

	if err := s.offices.Create(ctx, office, tags); err != nil {
		return nil, mapPersistError(err)
	}

	return s.offices.GetWithRelations(ctx, office.ID)
}

// Update applies the changed fields and re-syncs tags in one transaction.
// The actor needs the office.update scope and must be the owner; the
// capability and ownership checks are distinct. Changing lat, lng or
// price_per_day sends the office back to pending and, after commit,
// notifies the reviewer; a failed notification is logged and never fails
// the update.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, req UpdateOfficeRequest) (*domain.Office, error) {
	office, err := s.offices.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !actor.Can(domain.ScopeOfficeUpdate) {
		return nil, ErrForbidden
	}

	if office.UserID != actor.UserID {
		return nil, ErrForbidden
	}

	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	var tags *[]domain.Tag
	if req.Tags != nil {
		resolved, err := s.resolveTags(ctx, *req.Tags)
		if err != nil {
			return nil, err
		}
		tags = &resolved
	}

	requiresReview := applyChanges(office, req)
	if requiresReview {
		office.ApprovalStatus = domain.ApprovalPending
	}

	if err := s.offices.Update(ctx, office, tags); err != nil {
		return nil, mapPersistError(err)
	}

	if requiresReview {
		if err := s.notifs.NotifyOfficePendingApproval(ctx, office); err != nil {
			log.Printf("notification_failed office_id=%d error=%q", office.ID, err)
		}
	}

	return s.offices.GetWithRelations(ctx, office.ID)
}

// applyChanges copies the non-nil request fields onto the office and reports
// whether a field that re-triggers review (lat, lng, price_per_day) actually
// changed value.
func applyChanges(office *domain.Office, req UpdateOfficeRequest) bool {
	requiresReview := false

	if req.Title != nil {
		office.Title = *req.Title
	}
	if req.Description != nil {
		office.Description = *req.Description
	}
	if req.AddressLine1 != nil {
		office.AddressLine1 = *req.AddressLine1
	}
	if req.MonthlyDiscount != nil {
		office.MonthlyDiscount = *req.MonthlyDiscount
	}
	if req.Hidden != nil {
		office.Hidden = *req.Hidden
	}
	if req.Lat != nil && *req.Lat != office.Lat {
		office.Lat = *req.Lat
		requiresReview = true
	}
	if req.Lng != nil && *req.Lng != office.Lng {
		office.Lng = *req.Lng
		requiresReview = true
	}
	if req.PricePerDay != nil && *req.PricePerDay != office.PricePerDay {
		office.PricePerDay = *req.PricePerDay
		requiresReview = true
	}

	return requiresReview
}

func (s *Service) resolveTags(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tags, err := s.tags.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, validationError("tags", "contains unknown tag ids")
	}
	return tags, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// mapPersistError keeps constraint violations client-facing: a foreign key
// failure on the tag join means the payload referenced a missing row.
func mapPersistError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return validationError("tags", "contains unknown tag ids")
	}
	return err
}
