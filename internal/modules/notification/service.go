package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"officemarket/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

type UserRepository interface {
	GetByName(ctx context.Context, name string) (*domain.User, error)
}

type Service struct {
	repo         NotificationRepository
	users        UserRepository
	reviewerName string
}

func NewService(repo NotificationRepository, users UserRepository, reviewerName string) *Service {
	return &Service{
		repo:         repo,
		users:        users,
		reviewerName: reviewerName,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, t domain.NotificationType, title, message string, data map[string]any) error {
	n := &domain.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		n.Data = raw
	}
	return s.repo.Create(ctx, n)
}

// NotifyOfficePendingApproval tells the designated reviewer that an office
// re-entered pending status. The reviewer account is resolved by name on
// each dispatch.
func (s *Service) NotifyOfficePendingApproval(ctx context.Context, office *domain.Office) error {
	reviewer, err := s.users.GetByName(ctx, s.reviewerName)
	if err != nil {
		return fmt.Errorf("resolve reviewer %q: %w", s.reviewerName, err)
	}
	return s.Create(
		ctx,
		reviewer.ID,
		domain.NotifOfficePendingApproval,
		"Office pending approval",
		fmt.Sprintf("Office %q is awaiting review", office.Title),
		map[string]any{
			"office_id": office.ID,
		},
	)
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}
