package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Prem-himanshu/food-waste-management/internal/config"
	"github.com/Prem-himanshu/food-waste-management/internal/database"
	"github.com/Prem-himanshu/food-waste-management/internal/loader"
)

// ReadinessService verifies the required tables exist before any data request
// is served. When they are missing it attempts one load from the source
// files; if that also fails the service stays unready and requests are
// refused with a message naming the missing tables.
type ReadinessService struct {
	store  *database.Store
	loader *loader.Loader

	mu    sync.Mutex
	ready bool
}

func NewReadinessService(store *database.Store, ld *loader.Loader) *ReadinessService {
	return &ReadinessService{
		store:  store,
		loader: ld,
	}
}

// EnsureReady returns nil once all required tables exist. Success is cached:
// tables are only ever replaced, never dropped, outside an explicit reload.
func (s *ReadinessService) EnsureReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	missing, err := s.store.MissingTables()
	if err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	if len(missing) == 0 {
		s.ready = true
		return nil
	}

	logg := config.GetLogger()
	logg.Infof("Missing required tables [%s], attempting load from source files", strings.Join(missing, " "))

	loaded, loadErr := s.loader.Load()
	if loadErr == nil {
		logg.Infof("Loaded %d source files", len(loaded))
	}

	missing, err = s.store.MissingTables()
	if err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	if len(missing) == 0 {
		s.ready = true
		return nil
	}

	msg := fmt.Sprintf("data not ready: missing required tables [%s]", strings.Join(missing, " "))
	if loadErr != nil {
		if errors.Is(loadErr, loader.ErrNoSourceFiles) {
			return fmt.Errorf("%s: no source files found; place CSV files (providers/receivers/food_listings/claims) or a complete store file", msg)
		}
		return fmt.Errorf("%s: %w", msg, loadErr)
	}
	return errors.New(msg)
}

// Reload re-runs the loader unconditionally and resets the cached readiness
// so the next request re-checks the tables.
func (s *ReadinessService) Reload() ([]loader.LoadedFile, error) {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()

	return s.loader.Load()
}
