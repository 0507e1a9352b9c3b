package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Likes is the durable set of liked confession ids, stored as a JSON array.
// Every Toggle rewrites the whole file; the set stays small.
type Likes struct {
	path string
	log  *zap.Logger

	mu  sync.Mutex
	ids map[string]struct{}
}

// OpenLikes loads the liked set from path. A missing or malformed file
// yields an empty set.
func OpenLikes(path string, log *zap.Logger) *Likes {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Likes{path: path, log: log.Named("likes")}
	l.Load()
	return l
}

// Load re-reads the file and returns a copy of the set. It never fails:
// read and parse errors are logged and treated as an empty set.
func (l *Likes) Load() map[string]struct{} {
	ids := l.read()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.ids = ids
	return copySet(ids)
}

func (l *Likes) read() map[string]struct{} {
	ids := make(map[string]struct{})
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.log.Warn("reading liked set", zap.String("path", l.path), zap.Error(err))
		}
		return ids
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		l.log.Warn("ignoring malformed liked set", zap.String("path", l.path), zap.Error(err))
		return ids
	}
	for _, id := range list {
		if id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// Contains reports whether id is in the liked set.
func (l *Likes) Contains(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.ids[id]
	return ok
}

// Toggle adds or removes id and writes the full set back to disk before
// returning. The in-memory set keeps the change even if the write fails.
func (l *Likes) Toggle(id string, liked bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if liked {
		l.ids[id] = struct{}{}
	} else {
		delete(l.ids, id)
	}

	list := make([]string, 0, len(l.ids))
	for id := range l.ids {
		list = append(list, id)
	}
	sort.Strings(list)
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding liked set: %w", err)
	}
	return writeFileAtomic(l.path, data)
}

func copySet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}
