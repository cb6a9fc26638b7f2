package notify

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/pkg/logging"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

// API is the subset of the portal API used for notifications
type API interface {
	Notifications(ctx context.Context, userID string) ([]portalapi.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	DeleteNotification(ctx context.Context, id string) error
	ClearNotifications(ctx context.Context, userID string) error
}

var _ API = (*portalapi.Client)(nil)

// Service loads notifications and forwards local changes to the API.
// Writes are best effort: failures are logged and never reported back,
// since the panel has already applied the change locally.
type Service struct {
	api    API
	logger *logging.Logger
}

func NewService(api API, logger *logging.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("notify.Service: api is required")
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{api: api, logger: logger.Named("notify")}, nil
}

// List returns a user's notifications, empty on failure
func (s *Service) List(ctx context.Context, userID string) []domain.Notification {
	raw, err := s.api.Notifications(ctx, userID)
	if err != nil {
		s.logger.Warn("notifications fetch failed, showing empty list", "user_id", userID, "err", err)
		return []domain.Notification{}
	}

	out := make([]domain.Notification, 0, len(raw))
	for _, n := range raw {
		out = append(out, domain.Notification{
			ID:     n.ID.String(),
			Text:   n.Text,
			Time:   n.Time,
			IsRead: !n.IsNew,
		})
	}
	return out
}

func (s *Service) MarkRead(ctx context.Context, id string) {
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		s.logger.Warn("mark notification read failed", "id", id, "err", err)
	}
}

func (s *Service) Delete(ctx context.Context, id string) {
	if err := s.api.DeleteNotification(ctx, id); err != nil {
		s.logger.Warn("delete notification failed", "id", id, "err", err)
	}
}

func (s *Service) Clear(ctx context.Context, userID string) {
	if err := s.api.ClearNotifications(ctx, userID); err != nil {
		s.logger.Warn("clear notifications failed", "user_id", userID, "err", err)
	}
}
