package settings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Repository in-memory хранилище настроек доступности.
// Хранится единственная актуальная запись; история изменений не ведётся.
type Repository struct {
	mu       sync.RWMutex
	settings *domain.AvailabilitySettings
}

// NewRepository создает репозиторий настроек, заполненный значениями по умолчанию
func NewRepository(defaults *domain.AvailabilitySettings) *Repository {
	if defaults == nil {
		defaults = domain.DefaultAvailabilitySettings()
	}

	return &Repository{
		settings: defaults.Clone(),
	}
}

// Get возвращает текущие настройки доступности
func (r *Repository) Get(ctx context.Context) (*domain.AvailabilitySettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings.Clone(), nil
}

// Replace полностью заменяет настройки доступности и проставляет UpdatedAt
func (r *Repository) Replace(ctx context.Context, updated *domain.AvailabilitySettings) (*domain.AvailabilitySettings, error) {
	if updated == nil {
		return nil, fmt.Errorf("%w: Replace - settings are required", ErrInvalidSettings)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := updated.Clone()
	stored.UpdatedAt = time.Now()
	r.settings = stored

	return stored.Clone(), nil
}
