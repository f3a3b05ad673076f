package utils

import (
	"fmt"
	"log"
	"time"

	"coursetrack/config"
	"coursetrack/database"
	"coursetrack/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartReminderScheduler schedules the due-soon digest. The returned cron
// must be stopped on shutdown. Returns nil when no recipient is configured.
func StartReminderScheduler() *cron.Cron {
	if config.AppConfig.ReminderTo == "" {
		logScheduler("No REMINDER_TO configured, reminder digests disabled")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.ReminderCron, sendDueSoonReminders); err != nil {
		logScheduler("Invalid REMINDER_CRON expression: " + err.Error())
		return nil
	}

	c.Start()
	logScheduler("Reminder scheduler started with schedule " + config.AppConfig.ReminderCron)
	return c
}

// sendDueSoonReminders mails a digest of incomplete assignments due within
// the next 24 hours.
func sendDueSoonReminders() {
	db := database.Database.Db
	now := time.Now()

	var due []models.Assignment
	if err := db.Where("is_completed = ? AND due_date > ? AND due_date <= ?", false, now, now.Add(24*time.Hour)).
		Order("due_date asc").
		Find(&due).Error; err != nil {
		logScheduler("Error fetching due assignments: " + err.Error())
		return
	}

	if len(due) == 0 {
		return
	}

	items := make([]string, 0, len(due))
	for _, assignment := range due {
		items = append(items, fmt.Sprintf("%s (due %s)", assignment.Name, assignment.DueDate.Format("Mon, 02 Jan 2006 15:04")))
	}

	if err := SendDueSoonDigest(config.AppConfig.ReminderTo, items); err != nil {
		logScheduler("Error sending digest: " + err.Error())
		return
	}

	logScheduler(fmt.Sprintf("Sent due-soon digest with %d assignment(s)", len(due)))
}
