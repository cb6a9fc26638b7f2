package view

import (
	"slices"

	"github.com/honeycarbs/jobportal/internal/domain"
)

// Notifications is the notification panel. Changes apply locally right
// away; the matching API calls are made by the caller.
type Notifications struct {
	Items   []domain.Notification
	Unread  int
	Loading bool
}

func NewNotifications() Notifications {
	return Notifications{Items: []domain.Notification{}}
}

func ReduceNotifications(n Notifications, ev Event) Notifications {
	switch e := ev.(type) {
	case Mounted:
		n.Loading = true
	case NotificationsResolved:
		n.Items = slices.Clone(e.Items)
		if n.Items == nil {
			n.Items = []domain.Notification{}
		}
		n.Loading = false
	case NotificationRead:
		n.Items = setRead(n.Items, e.ID, true)
	case NotificationUnread:
		n.Items = setRead(n.Items, e.ID, false)
	case NotificationDeleted:
		n.Items = slices.DeleteFunc(slices.Clone(n.Items), func(item domain.Notification) bool {
			return item.ID == e.ID
		})
	case NotificationsCleared:
		n.Items = []domain.Notification{}
	default:
		return n
	}

	n.Unread = countUnread(n.Items)
	return n
}

func setRead(items []domain.Notification, id string, read bool) []domain.Notification {
	out := slices.Clone(items)
	for i := range out {
		if out[i].ID == id {
			out[i].IsRead = read
		}
	}
	return out
}

func countUnread(items []domain.Notification) int {
	n := 0
	for _, item := range items {
		if !item.IsRead {
			n++
		}
	}
	return n
}
