package tools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobportal/internal/domain/notify"
	"github.com/honeycarbs/jobportal/internal/view"
	"github.com/honeycarbs/jobportal/pkg/logging"
)

// NotificationsParams selects a user's panel and an optional action on it
type NotificationsParams struct {
	UserID string `json:"user_id,omitempty" jsonschema:"User whose notifications to show; defaults to the configured user"`
	Action string `json:"action,omitempty" jsonschema:"list, refresh, read, unread, delete or clear"`
	ID     string `json:"id,omitempty" jsonschema:"Notification id for read, unread and delete"`
}

type notificationsHandler struct {
	svc         *notify.Service
	defaultUser string
	logger      *logging.Logger

	mu     sync.Mutex
	panels map[string]*view.Host[view.Notifications]
}

// WithNotifications registers the notifications tool. Panels are kept per
// user between calls so local-only changes such as unread survive.
func WithNotifications(svc *notify.Service, defaultUser string) Option {
	return func(reg *registry) {
		h := &notificationsHandler{
			svc:         svc,
			defaultUser: defaultUser,
			logger:      reg.logger,
			panels:      make(map[string]*view.Host[view.Notifications]),
		}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "notifications",
			Description: "Show, mark read or unread, delete and clear a user's notifications",
		}, h.handle)
	}
}

func (h *notificationsHandler) panel(ctx context.Context, userID string, refresh bool) *view.Host[view.Notifications] {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.panels[userID]
	if !ok {
		p = view.MountNotifications(ctx, h.svc, userID, h.logger)
		h.panels[userID] = p
		return p
	}
	if refresh {
		p.Unmount()
		p = view.MountNotifications(ctx, h.svc, userID, h.logger)
		h.panels[userID] = p
	}
	return p
}

func (h *notificationsHandler) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *NotificationsParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &NotificationsParams{}
	}
	userID := params.UserID
	if userID == "" {
		userID = h.defaultUser
	}
	if userID == "" {
		return errorResult("notifications requires user_id"), nil, nil
	}

	action := strings.ToLower(strings.TrimSpace(params.Action))
	id := strings.TrimSpace(params.ID)
	switch action {
	case "", "list", "refresh", "clear":
	case "read", "unread", "delete":
		if id == "" {
			return errorResult(fmt.Sprintf("%s requires id", action)), nil, nil
		}
	default:
		return errorResult(fmt.Sprintf("unknown action %q", params.Action)), nil, nil
	}

	p := h.panel(ctx, userID, action == "refresh")
	if _, err := view.Settle(ctx, p); err != nil {
		return nil, nil, err
	}

	var state view.Notifications
	switch action {
	case "read":
		state = p.Dispatch(view.NotificationRead{ID: id})
		h.svc.MarkRead(ctx, id)
	case "unread":
		state = p.Dispatch(view.NotificationUnread{ID: id})
	case "delete":
		state = p.Dispatch(view.NotificationDeleted{ID: id})
		h.svc.Delete(ctx, id)
	case "clear":
		state = p.Dispatch(view.NotificationsCleared{})
		h.svc.Clear(ctx, userID)
	default:
		state = p.State()
	}

	return textResult(renderNotifications(state)), state, nil
}

func renderNotifications(n view.Notifications) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d unread\n", n.Unread)
	if len(n.Items) == 0 {
		b.WriteString("No notifications.\n")
		return b.String()
	}
	for _, item := range n.Items {
		mark := " "
		if !item.IsRead {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s [%s] %s (%s)\n", mark, item.ID, item.Text, item.Time)
	}
	return b.String()
}
