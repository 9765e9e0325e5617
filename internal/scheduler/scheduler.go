package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/frazbot/internal/database"
	"github.com/go-co-op/gocron"
)

// Константы для настроек рассылки по умолчанию
const (
	DefaultNotificationStartHour = 7  // Время начала рассылки
	DefaultNotificationEndHour   = 22 // Время окончания рассылки
)

// Scheduler manages scheduled drill delivery
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
}

// Notifier interface for sending drill sentences
type Notifier interface {
	SendDrills(userID int64, count int) error
}

// New creates a new scheduler instance
func New(notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Schedule hourly check for users who need drills
	s.scheduler.Every(1).Hour().Do(s.checkAndSendDrills)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendDrills sends drill sentences to users whose notification hour
// matches the current hour, within the allowed daily window
func (s *Scheduler) checkAndSendDrills() {
	currentHour := time.Now().Hour()

	startHour := DefaultNotificationStartHour
	endHour := DefaultNotificationEndHour

	// Проверяем, задано ли время в переменных окружения
	if startHourStr := os.Getenv("NOTIFICATION_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}

	if endHourStr := os.Getenv("NOTIFICATION_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping drills",
			currentHour, startHour, endHour)
		return
	}

	userRepo := database.NewUserRepository()

	users, err := userRepo.GetUsersForNotification(currentHour)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	for _, user := range users {
		count := user.DrillsPerDay
		if count <= 0 {
			continue
		}

		if err := s.notifier.SendDrills(user.ID, count); err != nil {
			log.Printf("Error sending drills to user %d: %v", user.ID, err)
		}
	}
}

// RunManualCheck forces a drill batch for a specific user
func (s *Scheduler) RunManualCheck(userID int64) error {
	userRepo := database.NewUserRepository()

	user, err := userRepo.GetByTelegramID(userID)
	if err != nil {
		return err
	}

	return s.notifier.SendDrills(user.ID, user.DrillsPerDay)
}
