package cbtui

import (
	"github.com/mikeschinkel/codebrowse/session"
)

// Notice is a single queued user notification.
type Notice struct {
	Message  string
	Title    string
	Severity session.Severity
}

// NoticeQueue collects notifications raised synchronously inside Update()
// so the state model can drain them into alert commands afterward. The
// session controller notifies mid-operation; BubbleTea wants commands.
type NoticeQueue struct {
	notices []Notice
}

func NewNoticeQueue() *NoticeQueue {
	return &NoticeQueue{}
}

var _ session.Notifier = (*NoticeQueue)(nil)

// Notify implements session.Notifier by queuing.
func (q *NoticeQueue) Notify(message, title string, severity session.Severity) {
	q.notices = append(q.notices, Notice{
		Message:  message,
		Title:    title,
		Severity: severity,
	})
}

// Drain returns all queued notices and empties the queue.
func (q *NoticeQueue) Drain() []Notice {
	notices := q.notices
	q.notices = nil
	return notices
}

// Len returns the number of queued notices.
func (q *NoticeQueue) Len() int {
	return len(q.notices)
}
