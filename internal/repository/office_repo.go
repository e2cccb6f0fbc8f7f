package repository

import (
	"context"
	"math"

	"officemarket/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OfficeFilters are the optional listing parameters. A nil field is a no-op,
// filters compose with AND semantics.
type OfficeFilters struct {
	OwnerID   *int64
	VisitorID *int64
	Lat       *float64
	Lng       *float64
	Page      int
	PerPage   int
}

type OfficeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{db: db}
}

const reservationsCountSelect = "offices.*, (SELECT COUNT(*) FROM reservations" +
	" WHERE reservations.office_id = offices.id AND reservations.status = ?) AS reservations_count"

// List returns approved, non-hidden offices with tags, images, owner and the
// active reservation count, paginated.
func (r *OfficeRepository) List(ctx context.Context, f OfficeFilters) ([]domain.Office, int64, error) {
	if f.PerPage <= 0 {
		f.PerPage = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	q := r.db.WithContext(ctx).
		Model(&domain.Office{}).
		Where("offices.approval_status = ?", domain.ApprovalApproved).
		Where("offices.hidden = ?", false)

	if f.OwnerID != nil {
		q = q.Where("offices.user_id = ?", *f.OwnerID)
	}

	if f.VisitorID != nil {
		// Existence filter, not a join: an office with several reservations
		// by the visitor must still appear once.
		q = q.Where(
			"EXISTS (SELECT 1 FROM reservations WHERE reservations.office_id = offices.id AND reservations.user_id = ?)",
			*f.VisitorID,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Select(reservationsCountSelect, domain.ReservationActive)

	if f.Lat != nil && f.Lng != nil {
		q = q.Clauses(nearestTo(*f.Lat, *f.Lng))
	} else {
		q = q.Order("offices.id ASC")
	}

	offices := make([]domain.Office, 0, f.PerPage)
	err := q.
		Preload("Tags").
		Preload("Images").
		Preload("User").
		Limit(f.PerPage).
		Offset((f.Page - 1) * f.PerPage).
		Find(&offices).Error

	return offices, total, err
}

// nearestTo orders by squared equirectangular distance from the reference
// point. The longitude axis is scaled by cos(lat) computed here, so the
// expression stays plain arithmetic and runs on SQLite as well as Postgres.
// Monotonic in true distance at listing scale; ties fall back to id.
func nearestTo(lat, lng float64) clause.OrderBy {
	cos2 := math.Pow(math.Cos(lat*math.Pi/180), 2)
	return clause.OrderBy{
		Expression: clause.Expr{
			SQL: "((offices.lat - ?) * (offices.lat - ?) + (offices.lng - ?) * (offices.lng - ?) * ?) ASC, offices.id ASC",
			Vars: []interface{}{
				lat, lat, lng, lng, cos2,
			},
			WithoutParentheses: true,
		},
	}
}

// GetByID loads one office with relations and the active reservation count.
// No approval/hidden filter: show works for any existing office.
func (r *OfficeRepository) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	var office domain.Office
	err := r.db.WithContext(ctx).
		Select(reservationsCountSelect, domain.ReservationActive).
		Preload("Tags").
		Preload("Images").
		Preload("User").
		First(&office, id).Error
	if err != nil {
		return nil, err
	}
	return &office, nil
}

// GetRow loads the bare office row, no relations or counts. Used by the
// lifecycle service before an update.
func (r *OfficeRepository) GetRow(ctx context.Context, id int64) (*domain.Office, error) {
	var office domain.Office
	if err := r.db.WithContext(ctx).First(&office, id).Error; err != nil {
		return nil, err
	}
	return &office, nil
}

// GetWithRelations loads an office with tags, images and owner but without
// the reservation aggregate, for create/update responses.
func (r *OfficeRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Office, error) {
	var office domain.Office
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Images").
		Preload("User").
		First(&office, id).Error
	if err != nil {
		return nil, err
	}
	return &office, nil
}

// Create persists the office row and its tag associations in one
// transaction; both succeed or neither does.
func (r *OfficeRepository) Create(ctx context.Context, office *domain.Office, tags []domain.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(office).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(office).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update saves the office fields and, when tags is non-nil, replaces the tag
// set (sync semantics: unlisted tags detached, new ones attached) in the
// same transaction.
func (r *OfficeRepository) Update(ctx context.Context, office *domain.Office, tags *[]domain.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(office).Error; err != nil {
			return err
		}
		if tags != nil {
			if err := tx.Model(office).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
}
