package controller

import (
	"fmt"
	"time"

	"github.com/opencode-ai/tint/internal/theme"
)

// Change describes one applied ChangeTheme call.
type Change struct {
	Previous  Snapshot
	Current   Snapshot
	Scheme    theme.ColorScheme
	Seq       uint64
	Timestamp time.Time
}

// Subscriber receives theme changes.
type Subscriber interface {
	OnThemeChange(change Change)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(Change)

// OnThemeChange implements Subscriber.
func (f SubscriberFunc) OnThemeChange(change Change) {
	f(change)
}

type subscription struct {
	id         string
	subscriber Subscriber
}

// Subscribe registers a subscriber under id. Subscribers are notified in
// registration order.
func (c *Controller) Subscribe(id string, subscriber Subscriber) error {
	if id == "" || subscriber == nil {
		return ErrInvalidSubscriber
	}

	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for _, sub := range c.subs {
		if sub.id == id {
			return fmt.Errorf("%w: %s", ErrSubscriberExists, id)
		}
	}
	c.subs = append(c.subs, subscription{id: id, subscriber: subscriber})
	c.logger.Debug().Str("subscriber", id).Msg("subscribed")
	return nil
}

// SubscribeFunc registers fn under id.
func (c *Controller) SubscribeFunc(id string, fn func(Change)) error {
	if fn == nil {
		return ErrInvalidSubscriber
	}
	return c.Subscribe(id, SubscriberFunc(fn))
}

// Unsubscribe removes the subscriber registered under id.
func (c *Controller) Unsubscribe(id string) error {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for i, sub := range c.subs {
		if sub.id == id {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			c.logger.Debug().Str("subscriber", id).Msg("unsubscribed")
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSubscriberNotFound, id)
}

// SubscriberCount returns the number of registered subscribers.
func (c *Controller) SubscriberCount() int {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	return len(c.subs)
}

// drain delivers queued changes in order until the queue is empty.
func (c *Controller) drain() {
	for {
		c.mu.Lock()
		if len(c.pending) == 0 {
			c.delivering = false
			c.mu.Unlock()
			return
		}
		change := c.pending[0]
		c.pending[0] = Change{}
		c.pending = c.pending[1:]
		c.mu.Unlock()

		c.notify(change)
	}
}

// notify delivers change to a copy of the subscriber list so subscribers may
// call back into the controller.
func (c *Controller) notify(change Change) {
	c.subsMu.Lock()
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	c.subsMu.Unlock()

	for _, sub := range subs {
		c.deliver(sub, change)
	}
}

func (c *Controller) deliver(sub subscription, change Change) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("subscriber", sub.id).
				Interface("panic", r).
				Msg("subscriber panicked")
		}
	}()
	sub.subscriber.OnThemeChange(change)
}
