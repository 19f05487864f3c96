package notification

import (
	"BeerExpiryTracker/entities"
	"BeerExpiryTracker/internal/utils/mailing"
	"BeerExpiryTracker/pkg/beer"
	"context"
	"fmt"
	"log"
	"time"
)

const (
	pushTitle    = "Beer Expiry Alert"
	emailSubject = "Beer Expiry Reminder"
)

type (
	NotificationService interface {
		// Run performs one reminder pass for the given day. Today is an
		// explicit argument so the weekend skip and due-item selection can
		// be exercised without the wall clock.
		Run(ctx context.Context, today time.Time) error
	}

	notificationService struct {
		beerRepository beer.BeerRepository
		push           PushSender
		mail           mailing.Sender
		pushEnabled    bool
	}
)

func NewNotificationService(beerRepository beer.BeerRepository, push PushSender, mail mailing.Sender, pushEnabled bool) NotificationService {
	return &notificationService{
		beerRepository: beerRepository,
		push:           push,
		mail:           mail,
		pushEnabled:    pushEnabled,
	}
}

func (s *notificationService) Run(ctx context.Context, today time.Time) error {
	log.Println("Running scheduled reminder check")

	if isWeekend(today) {
		log.Println("Today is a weekend, skipping reminders")
		return nil
	}

	beers, err := s.beerRepository.FindBeersNeedingReminders(ctx, today)
	if err != nil {
		return err
	}
	log.Printf("Found %d beers needing reminders", len(beers))

	for _, b := range beers {
		s.dispatch(ctx, b, today)
	}

	return nil
}

// dispatch attempts push first, then email, and only records a reminder as
// sent when one of the channels actually succeeded. A beer with no usable
// channel is left untouched and will be selected again on the next run.
func (s *notificationService) dispatch(ctx context.Context, b *entities.Beer, today time.Time) {
	// re-check the selection bounds against edits made between select and
	// dispatch: the count may have reached the cap, or the expiry date may
	// have been moved into the past
	if b.ReminderCount >= entities.MaxReminderCount {
		return
	}
	if !b.ExpiryDate.After(truncateToDay(today)) {
		return
	}

	if b.User == nil {
		log.Printf("Beer %s has no owner loaded, skipping", b.ID)
		return
	}

	message := formatReminderMessage(b, today)
	sent := false

	if s.pushEnabled && b.User.DeviceToken != "" {
		if err := s.push.Send(ctx, b.User.DeviceToken, pushTitle, message, b.ID.String()); err != nil {
			log.Printf("Error sending push notification for beer %s: %v", b.ID, err)
		} else {
			sent = true
		}
	}

	if !sent && b.User.Email != "" {
		if err := s.mail.Send(b.User.Email, emailSubject, message); err != nil {
			log.Printf("Failed to send email notification to %s: %v", b.User.Email, err)
		} else {
			log.Printf("Email notification sent to: %s", b.User.Email)
			sent = true
		}
	}

	if !sent {
		return
	}

	b.ReminderSent = true
	b.ReminderCount++

	// persist without the preloaded owner so the user row is never
	// written back from a possibly stale copy
	saved := *b
	saved.User = nil
	if err := s.beerRepository.UpdateBeer(ctx, &saved); err != nil {
		log.Printf("Failed to persist reminder state for beer %s: %v", b.ID, err)
		return
	}
	log.Printf("Sent reminder for beer: %s (count: %d)", b.ProductName, b.ReminderCount)
}

func formatReminderMessage(b *entities.Beer, today time.Time) string {
	days := int(b.ExpiryDate.Sub(truncateToDay(today)).Hours() / 24)
	return fmt.Sprintf("Reminder: %s %s will expire on %s (in %d days). Please check your inventory.",
		b.BrandName, b.ProductName, b.ExpiryDate.Format("January 2, 2006"), days)
}

func isWeekend(date time.Time) bool {
	day := date.Weekday()
	return day == time.Saturday || day == time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
