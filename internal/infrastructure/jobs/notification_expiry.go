package jobs

import (
	"context"
	"log"
	"time"
)

type expirableNotifications interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// NotificationExpiryJob deactivates notifications past their expiry
type NotificationExpiryJob struct {
	repo     expirableNotifications
	interval time.Duration
	stop     chan struct{}
}

func NewNotificationExpiryJob(repo expirableNotifications) *NotificationExpiryJob {
	return &NotificationExpiryJob{
		repo:     repo,
		interval: time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *NotificationExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting notification expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Notification expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Notification expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *NotificationExpiryJob) Stop() {
	close(j.stop)
}

func (j *NotificationExpiryJob) sweep(ctx context.Context) {
	touched, err := j.repo.DeactivateExpired(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Error deactivating expired notifications: %v", err)
		return
	}
	if touched > 0 {
		log.Printf("✅ Deactivated %d expired notifications", touched)
	}
}
