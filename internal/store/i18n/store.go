package i18n

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"lobitos-storefront/internal/domain"
	"lobitos-storefront/internal/storage"
)

const storageKey = "language"

// Language is one of the two supported locales.
type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

var supported = []language.Tag{
	language.English, // matcher fallback
	language.Spanish,
}

// Store resolves dot-separated key paths against the active locale tree and
// persists the locale choice.
type Store struct {
	kv     storage.KV
	logger *log.Logger

	mu   sync.Mutex
	lang Language
}

// New builds a Store. The initial locale is the persisted choice when one
// exists, else the ambient locale string (LANG-style or a BCP 47 tag)
// matched against the supported set, else English.
func New(kv storage.KV, logger *log.Logger, ambient string) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{kv: kv, logger: logger, lang: LanguageEN}

	raw, err := kv.Get(storageKey)
	switch {
	case err == nil:
		if lang, ok := parseLanguage(string(raw)); ok {
			s.lang = lang
			return s
		}
		logger.Printf("i18n: ignoring persisted locale %q", raw)
	case !errors.Is(err, domain.ErrNotFound):
		logger.Printf("i18n: locale read failed: %v", err)
	}

	s.lang = Detect(ambient)
	return s
}

// Language returns the active locale.
func (s *Store) Language() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage switches the active locale and persists the choice.
func (s *Store) SetLanguage(lang Language) error {
	parsed, ok := parseLanguage(string(lang))
	if !ok {
		return fmt.Errorf("unsupported language %q", lang)
	}
	if err := s.kv.Put(storageKey, []byte(parsed)); err != nil {
		return err
	}

	s.mu.Lock()
	s.lang = parsed
	s.mu.Unlock()
	return nil
}

// Lookup resolves a dot-separated key path against the active locale tree.
// The boolean reports whether the full path resolved to a string.
func (s *Store) Lookup(path string) (string, bool) {
	tree := translations[s.Language()]

	var current interface{} = tree
	for _, key := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		current, ok = node[key]
		if !ok {
			return "", false
		}
	}

	text, ok := current.(string)
	return text, ok
}

// T resolves the path, degrading to the path itself when missing. It never
// fails; a miss is logged and rendered verbatim.
func (s *Store) T(path string) string {
	if text, ok := s.Lookup(path); ok {
		return text
	}
	s.logger.Printf("i18n: translation key not found: %s", path)
	return path
}

// Tree returns the active locale's full translation tree.
func (s *Store) Tree() map[string]interface{} {
	return translations[s.Language()]
}

// Detect maps an ambient locale string to a supported Language. Accepts both
// BCP 47 tags ("es-PE") and POSIX LANG values ("es_PE.UTF-8").
func Detect(ambient string) Language {
	ambient = strings.TrimSpace(ambient)
	if ambient == "" {
		return LanguageEN
	}
	if i := strings.IndexAny(ambient, ".@"); i >= 0 {
		ambient = ambient[:i]
	}
	ambient = strings.ReplaceAll(ambient, "_", "-")

	tag, err := language.Parse(ambient)
	if err != nil {
		return LanguageEN
	}
	_, index, _ := language.NewMatcher(supported).Match(tag)
	if supported[index] == language.Spanish {
		return LanguageES
	}
	return LanguageEN
}

func parseLanguage(v string) (Language, bool) {
	switch Language(strings.TrimSpace(v)) {
	case LanguageEN:
		return LanguageEN, true
	case LanguageES:
		return LanguageES, true
	}
	return "", false
}
