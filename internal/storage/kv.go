package storage

import "sync"

// KV is a durable string-keyed map.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Prefixed returns a view of kv that stores every key as "prefix:key".
// An empty prefix returns kv itself.
func Prefixed(kv KV, prefix string) KV {
	if prefix == "" {
		return kv
	}
	return &prefixed{kv: kv, prefix: prefix + ":"}
}

type prefixed struct {
	kv     KV
	prefix string
}

func (p *prefixed) Get(key string) (string, bool, error) {
	return p.kv.Get(p.prefix + key)
}

func (p *prefixed) Set(key, value string) error {
	return p.kv.Set(p.prefix+key, value)
}

// ReadOnly returns a view of kv that drops every write.
func ReadOnly(kv KV) KV {
	return readOnly{kv: kv}
}

type readOnly struct {
	kv KV
}

func (r readOnly) Get(key string) (string, bool, error) {
	return r.kv.Get(key)
}

func (readOnly) Set(string, string) error {
	return nil
}

// MemoryStore is an in-process KV. Nothing survives the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
