package store

import (
	"strings"
	"sync"

	"github.com/agentstation/dirsync/pkg/policy"
)

// MemStore is an in-memory configuration store for the CLI and tests.
type MemStore struct {
	mu          sync.RWMutex
	realms      map[string]*Realm
	resources   map[string]*Resource
	credentials map[string]Credential
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		realms:      make(map[string]*Realm),
		resources:   make(map[string]*Resource),
		credentials: make(map[string]Credential),
	}
}

// AddRealm registers a realm by its full path.
func (s *MemStore) AddRealm(r *Realm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.realms[r.FullPath] = r
}

// AddResource registers an external resource by name.
func (s *MemStore) AddResource(r *Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[r.Name] = r
}

// SetCredential stores the hashed credential of an entity.
func (s *MemStore) SetCredential(key string, cred Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[key] = cred
}

// ReadTx returns a read-scoped view of the store. The view holds no
// locks between calls; each lookup takes a read lock of its own, which
// gives the consistency the engine needs since it never writes.
func (s *MemStore) ReadTx() ReadTx {
	return &readTx{store: s}
}

type readTx struct {
	store *MemStore
}

// RealmByPath implements policy.Lookup.
func (tx *readTx) RealmByPath(path string) (policy.Realm, bool) {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	r, ok := tx.store.realms[path]
	if !ok {
		return nil, false
	}
	return r, true
}

// Ancestors implements policy.Lookup: the realm itself first, then each
// ancestor present in the store, up to the root. Path segments without a
// registered realm contribute nothing.
func (tx *readTx) Ancestors(realm policy.Realm) []policy.Realm {
	r, ok := realm.(*Realm)
	if !ok {
		return nil
	}

	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()

	var ancestors []policy.Realm
	for _, path := range ancestorPaths(r.FullPath) {
		if ancestor, ok := tx.store.realms[path]; ok {
			ancestors = append(ancestors, ancestor)
		}
	}
	return ancestors
}

// ResourceByName implements policy.Lookup.
func (tx *readTx) ResourceByName(name string) (policy.Resource, bool) {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	r, ok := tx.store.resources[name]
	if !ok {
		return nil, false
	}
	return r, true
}

// Resource returns the full resource configuration, for callers that
// need more than the policy view.
func (tx *readTx) Resource(name string) (*Resource, bool) {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	r, ok := tx.store.resources[name]
	return r, ok
}

// CredentialByKey implements ReadTx.
func (tx *readTx) CredentialByKey(key string) (Credential, bool) {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	cred, ok := tx.store.credentials[key]
	return cred, ok
}

// ancestorPaths expands a full realm path into itself and every ancestor
// path, leaf first, ending at the root "/".
func ancestorPaths(fullPath string) []string {
	fullPath = strings.TrimRight(fullPath, "/")
	if fullPath == "" {
		return []string{"/"}
	}

	var paths []string
	for fullPath != "" {
		paths = append(paths, fullPath)
		idx := strings.LastIndex(fullPath, "/")
		if idx <= 0 {
			break
		}
		fullPath = fullPath[:idx]
	}
	paths = append(paths, "/")
	return paths
}
