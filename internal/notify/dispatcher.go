package notify

import (
	"context"
	"sync"
	"time"

	model "skinswap/internal/models"
	"skinswap/internal/repository"
	"skinswap/utils"
)

const (
	// DefaultBuffer is the queue size used when a non-positive buffer is given
	DefaultBuffer = 256
	saveTimeout   = 5 * time.Second
)

// Dispatcher delivers notifications asynchronously so that trade operations
// never wait on notification storage. Notifications are queued on a buffered
// channel and persisted by a single worker goroutine.
type Dispatcher struct {
	store repository.NotificationStore
	queue chan model.Notification
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher and starts its worker
func NewDispatcher(store repository.NotificationStore, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	d := &Dispatcher{
		store: store,
		queue: make(chan model.Notification, buffer),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

// Notify enqueues a notification without blocking. It reports false when the
// notification was dropped because the queue is full or the dispatcher closed.
func (d *Dispatcher) Notify(n model.Notification) bool {
	if n.NotificationID == "" {
		n.NotificationID = utils.GenerateID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		utils.Warn("notify: dispatcher closed, dropping notification", fields(n))
		return false
	}

	select {
	case d.queue <- n:
		return true
	default:
		utils.Warn("notify: queue full, dropping notification", fields(n))
		return false
	}
}

// Close stops accepting notifications and waits until queued ones are saved
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for n := range d.queue {
		d.save(n)
	}
}

func (d *Dispatcher) save(n model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := d.store.SaveNotification(ctx, n); err != nil {
		f := fields(n)
		f["error"] = err.Error()
		utils.Error("notify: failed to save notification", f)
		return
	}
	utils.Debug("notify: notification delivered", fields(n))
}

func fields(n model.Notification) map[string]any {
	return map[string]any{
		"notification_id": n.NotificationID,
		"user_id":         n.UserID,
		"type":            string(n.Type),
		"listing_id":      n.ListingID,
	}
}
