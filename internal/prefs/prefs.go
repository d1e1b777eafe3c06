package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/zhubert/dotide/internal/activity"
	"github.com/zhubert/dotide/internal/errors"
	"github.com/zhubert/dotide/internal/logger"
)

// Storage keys.
const (
	KeyFontSize     = "font_size"
	KeyActivityLogs = "activity_logs"
	KeyTheme        = "theme"
)

// Font sizes offered in the appearance picker.
const (
	FontSmall  = 12
	FontMedium = 14
	FontLarge  = 18

	DefaultFontSize = FontMedium
)

// FontSizes lists the sizes the picker offers, smallest first.
var FontSizes = []int{FontSmall, FontMedium, FontLarge}

// FontLabel returns the picker label for a size. Sizes outside the picker
// are shown as numbers.
func FontLabel(size int) string {
	switch size {
	case FontSmall:
		return "Small"
	case FontMedium:
		return "Medium"
	case FontLarge:
		return "Large"
	default:
		return fmt.Sprintf("%dpt", size)
	}
}

// Preferences is the typed view over a Store. Reads fall back to defaults on
// any failure; writes go through synchronously.
type Preferences struct {
	store Store
}

// New wraps store.
func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// Store returns the underlying backend.
func (p *Preferences) Store() Store {
	return p.store
}

func (p *Preferences) load(key string, v any) bool {
	log := logger.WithComponent("prefs")
	data, ok, err := p.store.Load(key)
	if err != nil {
		log.Warn("failed to load preference, using default", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("failed to decode preference, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (p *Preferences) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.E(errors.Op("prefs.save"), errors.KindInvalid, key, err)
	}
	if err := p.store.Save(key, data); err != nil {
		logger.WithComponent("prefs").Error("failed to save preference", "key", key, "error", err)
		return err
	}
	return nil
}

// FontSize returns the persisted editor font size exactly as saved, or 14
// when nothing readable is stored.
func (p *Preferences) FontSize() int {
	var size int
	if !p.load(KeyFontSize, &size) {
		return DefaultFontSize
	}
	return size
}

// SetFontSize persists size. It fails only when the store does.
func (p *Preferences) SetFontSize(size int) error {
	return p.save(KeyFontSize, size)
}

// Theme returns the persisted theme id, or "" if none was chosen.
func (p *Preferences) Theme() string {
	var name string
	p.load(KeyTheme, &name)
	return name
}

// SetTheme persists the chosen theme id.
func (p *Preferences) SetTheme(name string) error {
	return p.save(KeyTheme, name)
}

// ActivityLogs returns the persisted activity log, or an empty log.
func (p *Preferences) ActivityLogs() []activity.Entry {
	var logs []activity.Entry
	if !p.load(KeyActivityLogs, &logs) {
		return nil
	}
	return logs
}

// SaveActivityLogs replaces the persisted activity log.
func (p *Preferences) SaveActivityLogs(logs []activity.Entry) error {
	if logs == nil {
		logs = []activity.Entry{}
	}
	return p.save(KeyActivityLogs, logs)
}

// ClearActivityLogs removes the persisted activity log.
func (p *Preferences) ClearActivityLogs() error {
	return p.store.Delete(KeyActivityLogs)
}

// Close closes the underlying store.
func (p *Preferences) Close() error {
	return p.store.Close()
}
