package reminder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Expronix-Backend/entities"
)

var now = time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

func itemDue(name string, daysOut int) entities.FoodItem {
	return entities.FoodItem{
		Name:       name,
		Quantity:   "1 unit",
		ExpiryDate: now.AddDate(0, 0, daysOut),
	}
}

func profileWithReminders(email string, enabled bool, window int) entities.UserProfile {
	p := entities.UserProfile{Name: "Jane", Email: email}
	p.Settings = entities.DefaultSettings()
	p.Settings.Notifications.ExpiryReminders = enabled
	p.Settings.Notifications.ReminderTiming = window
	return p
}

func TestDigestItemsSelectsWindowMostUrgentFirst(t *testing.T) {
	items := []entities.FoodItem{
		itemDue("Safe", 10),
		itemDue("Soon", 2),
		itemDue("Expired", -1),
		itemDue("Today", 0),
	}

	due := DigestItems(items, now, 3)

	require.Len(t, due, 3)
	assert.Equal(t, "Expired", due[0].Name)
	assert.Equal(t, "Today", due[1].Name)
	assert.Equal(t, "Soon", due[2].Name)
}

func TestSendExpiryDigest(t *testing.T) {
	var sentTo, sentSubject, sentBody string
	svc := NewReminderServiceWithSender(func(to, subject, body string) error {
		sentTo, sentSubject, sentBody = to, subject, body
		return nil
	})

	sent, err := svc.SendExpiryDigest(
		profileWithReminders("jane@example.com", true, 3),
		[]entities.FoodItem{itemDue("Milk", 1), itemDue("Rice", 30)},
		now,
	)

	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, "jane@example.com", sentTo)
	assert.Contains(t, sentSubject, "1 item(s)")
	assert.Contains(t, sentBody, "Milk")
	assert.NotContains(t, sentBody, "Rice")
}

func TestSendExpiryDigestSkipsWhenDisabled(t *testing.T) {
	svc := NewReminderServiceWithSender(func(string, string, string) error {
		t.Fatal("must not send when reminders are disabled")
		return nil
	})

	sent, err := svc.SendExpiryDigest(
		profileWithReminders("jane@example.com", false, 3),
		[]entities.FoodItem{itemDue("Milk", 1)},
		now,
	)
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestSendExpiryDigestSkipsWithoutEmail(t *testing.T) {
	svc := NewReminderServiceWithSender(func(string, string, string) error {
		t.Fatal("must not send without a recipient")
		return nil
	})

	sent, err := svc.SendExpiryDigest(
		profileWithReminders("", true, 3),
		[]entities.FoodItem{itemDue("Milk", 1)},
		now,
	)
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestSendExpiryDigestNothingDue(t *testing.T) {
	svc := NewReminderServiceWithSender(func(string, string, string) error {
		t.Fatal("must not send an empty digest")
		return nil
	})

	sent, err := svc.SendExpiryDigest(
		profileWithReminders("jane@example.com", true, 3),
		[]entities.FoodItem{itemDue("Rice", 30)},
		now,
	)
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestSendExpiryDigestPropagatesTransportError(t *testing.T) {
	svc := NewReminderServiceWithSender(func(string, string, string) error {
		return errors.New("smtp down")
	})

	sent, err := svc.SendExpiryDigest(
		profileWithReminders("jane@example.com", true, 3),
		[]entities.FoodItem{itemDue("Milk", 1)},
		now,
	)
	assert.Error(t, err)
	assert.False(t, sent)
}
