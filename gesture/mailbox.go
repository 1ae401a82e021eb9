package gesture

import (
	"sync/atomic"
)

// Mailbox is a lock-free last-value-wins slot between an asynchronous
// gesture driver and the render loop. Any goroutine may Publish; the loop
// Polls. Older unread frames are simply replaced.
type Mailbox struct {
	latest atomic.Pointer[Frame]
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

func (m *Mailbox) Publish(f Frame) {
	m.latest.Store(&f)
}

// Poll returns the most recently published frame, or DefaultFrame before
// the first publish. Mailbox satisfies Source so the loop can consume an
// async driver directly.
func (m *Mailbox) Poll() Frame {
	if p := m.latest.Load(); p != nil {
		return *p
	}
	return DefaultFrame()
}

func (m *Mailbox) Available() bool {
	return m.latest.Load() != nil
}

func (m *Mailbox) Describe() string {
	return "async mailbox"
}
