package jobs

import (
	"sync"
	"time"

	"github.com/chlnedo/calorie-tracker/database"
	"github.com/chlnedo/calorie-tracker/logger"
	"github.com/chlnedo/calorie-tracker/models"
	"github.com/chlnedo/calorie-tracker/services"
)

// RolloverWorker watches for the calendar day to change and drops stale log
// rows. Handlers never load a log whose date is not today, so stale rows are
// unreachable anyway; this keeps a long-running server from accumulating
// them.
type RolloverWorker struct {
	interval time.Duration
	stop     chan struct{}
	lastDate string
}

var (
	worker     *RolloverWorker
	workerOnce sync.Once
)

// GetWorker returns the singleton rollover worker, starting it on first use.
func GetWorker() *RolloverWorker {
	workerOnce.Do(func() {
		worker = &RolloverWorker{
			interval: time.Minute,
			stop:     make(chan struct{}),
			lastDate: services.DateKey(time.Now()),
		}
		go worker.run()
		logger.Info("Daily log rollover worker started")
	})
	return worker
}

// Stop terminates the worker loop.
func (w *RolloverWorker) Stop() {
	close(w.stop)
}

func (w *RolloverWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(time.Now())
		case <-w.stop:
			return
		}
	}
}

func (w *RolloverWorker) tick(now time.Time) {
	today := services.DateKey(now)
	if today == w.lastDate {
		return
	}

	result := database.DB.Where("date <> ?", today).Delete(&models.DailyLog{})
	if result.Error != nil {
		logger.Error("Failed to drop stale daily logs", "error", result.Error)
		return
	}

	logger.Info("Daily log rolled over", "date", today, "dropped", result.RowsAffected)
	w.lastDate = today
}
