package lifecycle

import (
	"time"
)

// CancelFunc отменяет запланированный вызов. Повторный вызов безопасен.
type CancelFunc func()

// Scheduler - абстракция отложенного выполнения. Менеджер жизненного цикла
// планирует через нее проверку эскалации, а тесты подменяют реализацию и
// продвигают время детерминированно, без ожидания настенных часов.
type Scheduler interface {
	// Now возвращает текущее время (UTC)
	Now() time.Time
	// ScheduleAt планирует однократный вызов fn в момент t.
	// Если t уже в прошлом, fn вызывается немедленно (асинхронно).
	ScheduleAt(t time.Time, fn func()) CancelFunc
}

// wallClockScheduler - реализация поверх time.AfterFunc
type wallClockScheduler struct{}

// NewWallClockScheduler возвращает планировщик на настенных часах
func NewWallClockScheduler() Scheduler {
	return &wallClockScheduler{}
}

func (s *wallClockScheduler) Now() time.Time {
	return time.Now().UTC()
}

func (s *wallClockScheduler) ScheduleAt(t time.Time, fn func()) CancelFunc {
	d := time.Until(t)
	if d < 0 {
		d = 0
	}
	timer := time.AfterFunc(d, fn)
	return func() {
		timer.Stop()
	}
}
