package reminder

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"Expronix-Backend/entities"
	"Expronix-Backend/internal/utils/mailing"
	"Expronix-Backend/pkg/expiry"
)

type (
	// ReminderService builds and sends the expiry digest email when the
	// profile's notification settings ask for one.
	ReminderService interface {
		SendExpiryDigest(profile entities.UserProfile, items []entities.FoodItem, now time.Time) (bool, error)
	}

	reminderService struct {
		sendMail func(toEmail, subject, body string) error
	}
)

func NewReminderService() ReminderService {
	return &reminderService{sendMail: mailing.SendMail}
}

// NewReminderServiceWithSender injects the mail transport, for tests.
func NewReminderServiceWithSender(send func(toEmail, subject, body string) error) ReminderService {
	return &reminderService{sendMail: send}
}

// SendExpiryDigest emails the items expiring within the profile's reminder
// window. Returns false when nothing was sent: reminders disabled, no email
// on file, or nothing expiring.
func (s *reminderService) SendExpiryDigest(profile entities.UserProfile, items []entities.FoodItem, now time.Time) (bool, error) {
	if !profile.Settings.Notifications.ExpiryReminders || profile.Email == "" {
		return false, nil
	}

	window := profile.Settings.Notifications.ReminderTiming
	if window <= 0 {
		window = 3
	}

	due := DigestItems(items, now, window)
	if len(due) == 0 {
		return false, nil
	}

	subject := fmt.Sprintf("%d item(s) in your pantry need attention", len(due))
	if err := s.sendMail(profile.Email, subject, digestBody(profile.Name, due, now)); err != nil {
		return false, err
	}
	return true, nil
}

// DigestItems selects the items already expired or expiring within the next
// windowDays days, most urgent first.
func DigestItems(items []entities.FoodItem, now time.Time, windowDays int) []entities.FoodItem {
	var due []entities.FoodItem
	for _, item := range items {
		if expiry.DaysUntil(item.ExpiryDate, now) <= windowDays {
			due = append(due, item)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return expiry.DaysUntil(due[i].ExpiryDate, now) < expiry.DaysUntil(due[j].ExpiryDate, now)
	})
	return due
}

func digestBody(name string, due []entities.FoodItem, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>Hi %s,</p><p>These items need attention:</p><ul>", name))
	for _, item := range due {
		days := expiry.DaysUntil(item.ExpiryDate, now)
		var when string
		switch {
		case days < 0:
			when = fmt.Sprintf("expired %d day(s) ago", -days)
		case days == 0:
			when = "expires today"
		default:
			when = fmt.Sprintf("expires in %d day(s)", days)
		}
		b.WriteString(fmt.Sprintf("<li><strong>%s</strong> (%s): %s</li>", item.Name, item.Quantity, when))
	}
	b.WriteString("</ul><p>Use them soon to cut waste and save money.</p>")
	return b.String()
}
