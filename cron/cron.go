package cron

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/agropetvet/vetcare-app/services"
)

// StartReminderScheduler runs the reminder sweep every evening at 18:00 so
// both parties get a heads-up the day before. The sweep itself is a one-shot
// batch; this only schedules it.
func StartReminderScheduler(log *logrus.Logger, reminders *services.ReminderService) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("0 18 * * *", func() {
		count, err := reminders.SweepTomorrow()
		if err != nil {
			log.Errorf("reminder sweep failed: %v", err)
			return
		}
		log.Infof("reminder sweep done, %d appointments reminded", count)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Info("reminder scheduler started")
	return c, nil
}
