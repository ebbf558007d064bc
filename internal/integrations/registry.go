package integrations

import (
	"fmt"
	"sync"
)

// RegistryInterface - набор геокодеров, из которых активен ровно один.
type RegistryInterface interface {
	Register(provider Geocoder) error
	Get(name string) (Geocoder, error)
	SetActive(name string) error
	GetActive() (Geocoder, error)
}

type Registry struct {
	providers map[string]Geocoder
	active    string
	mu        sync.RWMutex
}

func NewRegistry() RegistryInterface {
	return &Registry{
		providers: make(map[string]Geocoder),
	}
}

func (r *Registry) Register(provider Geocoder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := provider.Name()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("геокодер с именем '%s' уже зарегистрирован", name)
	}

	r.providers[name] = provider
	return nil
}

func (r *Registry) Get(name string) (Geocoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("геокодер с именем '%s' не найден", name)
	}
	return provider, nil
}

// SetActive выбирает геокодер по имени из конфигурации (GEOCODER_PROVIDER).
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; !exists {
		return fmt.Errorf("невозможно сделать активным геокодер '%s': он не зарегистрирован", name)
	}

	r.active = name
	return nil
}

func (r *Registry) GetActive() (Geocoder, error) {
	r.mu.RLock()
	activeName := r.active
	r.mu.RUnlock()

	if activeName == "" {
		return nil, fmt.Errorf("активный геокодер не установлен")
	}

	return r.Get(activeName)
}
