package session

import (
	"github.com/robfig/cron"

	"personnel-api/src/logger"
)

const sweeperSchedule = "@every 10m"

// Sweeper periodically drops expired sessions from a MemoryStore so the map
// cannot grow without bound under long uptimes.
type Sweeper struct {
	store *MemoryStore
	cron  *cron.Cron
}

func NewSweeper(store *MemoryStore) *Sweeper {
	return &Sweeper{
		store: store,
		cron:  cron.New(),
	}
}

func (s *Sweeper) Start() {
	err := s.cron.AddFunc(sweeperSchedule, func() { s.sweep() })
	if err != nil {
		logger.Default().Error(err, "Could not schedule session sweeper")
		return
	}
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	if removed := s.store.RemoveExpired(); removed > 0 {
		logger.Default().Infof("Session sweeper removed %d expired sessions", removed)
	}
}
