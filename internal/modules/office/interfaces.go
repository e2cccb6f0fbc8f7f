package office

import (
	"context"

	"officemarket/internal/domain"
	"officemarket/internal/repository"
)

type OfficeRepository interface {
	List(ctx context.Context, f repository.OfficeFilters) ([]domain.Office, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Office, error)
	GetRow(ctx context.Context, id int64) (*domain.Office, error)
	GetWithRelations(ctx context.Context, id int64) (*domain.Office, error)
	Create(ctx context.Context, office *domain.Office, tags []domain.Tag) error
	Update(ctx context.Context, office *domain.Office, tags *[]domain.Tag) error
}

type TagRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
}

// NotificationSender dispatches the pending-approval notice. Called strictly
// after the update transaction commits; errors are logged, never returned to
// the update caller.
type NotificationSender interface {
	NotifyOfficePendingApproval(ctx context.Context, office *domain.Office) error
}
