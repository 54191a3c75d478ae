package model

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt Timestamp `json:"created_at"`
}

type NotificationView struct {
	Items   []Notification `json:"items"`
	Unread  int            `json:"unread"`
	Loading bool           `json:"loading"`
}

// CountUnread counts entries whose read flag is unset.
func CountUnread(items []Notification) int {
	n := 0
	for _, it := range items {
		if !it.IsRead {
			n++
		}
	}
	return n
}
