package terminal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type QnA struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Library is the question list the ask command searches. It can be swapped
// at runtime when the backing file changes.
type Library struct {
	mu    sync.RWMutex
	items []QnA
}

func NewLibrary(items []QnA) *Library {
	l := &Library{}
	l.Replace(items)
	return l
}

func (l *Library) Items() []QnA {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]QnA(nil), l.items...)
}

func (l *Library) Replace(items []QnA) {
	l.mu.Lock()
	l.items = append([]QnA(nil), items...)
	l.mu.Unlock()
}

// LoadQnAFile reads a YAML list of question/answer/category entries.
func LoadQnAFile(path string) ([]QnA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read qna file: %w", err)
	}

	var items []QnA
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse qna file: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("qna file %s has no entries", path)
	}
	for i, item := range items {
		if item.Question == "" || item.Answer == "" {
			return nil, fmt.Errorf("qna entry %d needs both question and answer", i+1)
		}
	}
	return items, nil
}

// Watch reloads the library whenever path is written or recreated, until ctx
// is done. The parent directory is watched since editors often replace files
// instead of writing them in place. A file that fails to parse leaves the
// current list in place.
func (l *Library) Watch(ctx context.Context, path string, logger zerolog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				items, err := LoadQnAFile(path)
				if err != nil {
					logger.Warn().Err(err).Str("path", path).Msg("qna reload failed")
					continue
				}
				l.Replace(items)
				logger.Info().Str("path", path).Int("entries", len(items)).Msg("qna reloaded")
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("qna watch error")
			}
		}
	}()
	return nil
}
