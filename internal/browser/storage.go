package browser

import (
	"net/url"
	"sync"

	"fyne.io/fyne/v2"
)

// Storage backs the page's localStorage, scoped per origin
type Storage interface {
	GetItem(origin, key string) (string, bool)
	SetItem(origin, key, value string)
	RemoveItem(origin, key string)
	Clear(origin string)
}

// OriginOf returns scheme://host for a page URL
func OriginOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return pageURL
	}
	return u.Scheme + "://" + u.Host
}

// MemoryStorage keeps items for the lifetime of the process
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]map[string]string
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]map[string]string)}
}

// GetItem implements Storage
func (s *MemoryStorage) GetItem(origin, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[origin][key]
	return value, ok
}

// SetItem implements Storage
func (s *MemoryStorage) SetItem(origin, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items[origin] == nil {
		s.items[origin] = make(map[string]string)
	}
	s.items[origin][key] = value
}

// RemoveItem implements Storage
func (s *MemoryStorage) RemoveItem(origin, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items[origin], key)
}

// Clear implements Storage
func (s *MemoryStorage) Clear(origin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, origin)
}

// PreferencesStorage persists items in the app's Fyne preferences, the same
// place the platform browser would keep DOM storage.
type PreferencesStorage struct {
	mu    sync.Mutex
	prefs fyne.Preferences
}

// NewPreferencesStorage creates a storage on top of prefs
func NewPreferencesStorage(prefs fyne.Preferences) *PreferencesStorage {
	return &PreferencesStorage{prefs: prefs}
}

func itemKey(origin, key string) string {
	return "localStorage/" + origin + "/" + key
}

func indexKey(origin string) string {
	return "localStorage/" + origin + "#keys"
}

// GetItem implements Storage
func (s *PreferencesStorage) GetItem(origin, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !contains(s.prefs.StringList(indexKey(origin)), key) {
		return "", false
	}
	return s.prefs.String(itemKey(origin, key)), true
}

// SetItem implements Storage
func (s *PreferencesStorage) SetItem(origin, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := s.prefs.StringList(indexKey(origin))
	if !contains(keys, key) {
		s.prefs.SetStringList(indexKey(origin), append(keys, key))
	}
	s.prefs.SetString(itemKey(origin, key), value)
}

// RemoveItem implements Storage
func (s *PreferencesStorage) RemoveItem(origin, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := s.prefs.StringList(indexKey(origin))
	kept := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != key {
			kept = append(kept, k)
		}
	}
	s.prefs.SetStringList(indexKey(origin), kept)
	s.prefs.RemoveValue(itemKey(origin, key))
}

// Clear implements Storage
func (s *PreferencesStorage) Clear(origin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.prefs.StringList(indexKey(origin)) {
		s.prefs.RemoveValue(itemKey(origin, k))
	}
	s.prefs.RemoveValue(indexKey(origin))
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
