package i18n

import "sync"

// Store holds the active language and its dictionary. Only the language
// controller writes to it.
type Store struct {
	mu   sync.RWMutex
	lang Language
	dict *Dictionary
}

// NewStore creates a store with lang active. dict may be nil when the page
// still shows its static fallback markup.
func NewStore(lang Language, dict *Dictionary) *Store {
	return &Store{lang: lang, dict: dict}
}

// Active returns the active language and dictionary.
func (s *Store) Active() (Language, *Dictionary) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang, s.dict
}

// Language returns the active language.
func (s *Store) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Set replaces the active language and dictionary together.
func (s *Store) Set(lang Language, dict *Dictionary) {
	s.mu.Lock()
	s.lang = lang
	s.dict = dict
	s.mu.Unlock()
}
