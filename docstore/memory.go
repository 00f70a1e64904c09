package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps everything in memory. Data is lost on restart.
// Safe for concurrent use. Documents come back in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

// deepCopy returns a deep copy of a document by round-tripping through JSON.
func deepCopy(src Document) Document {
	if src == nil {
		return nil
	}
	b, _ := json.Marshal(src)
	var dst Document
	_ = json.Unmarshal(b, &dst)
	return dst
}

// equalJSON compares two values by their JSON encoding, so filter values
// match stored values regardless of how either was decoded.
func equalJSON(a, b any) bool {
	ab, aerr := json.Marshal(a)
	bb, berr := json.Marshal(b)
	if aerr != nil || berr != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

func (m *MemoryStore) Create(_ context.Context, collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := deepCopy(doc)
	if stored == nil {
		stored = Document{}
	}
	id := uuid.New().String()
	stored["id"] = id
	m.collections[collection] = append(m.collections[collection], stored)
	return id, nil
}

func (m *MemoryStore) Find(_ context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []Document
	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		result = append(result, deepCopy(doc))
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func matches(doc Document, filter Filter) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok || !equalJSON(got, want) {
			return false
		}
	}
	return true
}

func (m *MemoryStore) Collections(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
