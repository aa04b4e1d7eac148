package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/patrick-campos/Accessories-Assessment-sub000/models"
)

// MemoryStore is an in-process Store used by tests and local tooling. It
// keeps one slice of documents per collection.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]any

	// FailOn, when set, makes the insert into that collection fail. Lets
	// tests break a multi-row write at a chosen point.
	FailOn     string
	FailOnErr  error
	failCalled bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string][]any{}}
}

func (s *MemoryStore) InsertOne(_ context.Context, collection string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailOn == collection && !s.failCalled {
		s.failCalled = true
		return s.FailOnErr
	}
	s.docs[collection] = append(s.docs[collection], doc)
	return nil
}

func (s *MemoryStore) FindQuoteIDByRequestID(_ context.Context, requestID string) (bson.ObjectID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.docs[models.IntakeRequestsCollection] {
		if row, ok := doc.(models.IntakeRequestRow); ok && row.RequestID == requestID {
			return row.QuoteID, true, nil
		}
	}
	return bson.ObjectID{}, false, nil
}

// Count returns the number of documents in a collection.
func (s *MemoryStore) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs[collection])
}

// Docs returns the raw documents of a collection in insertion order.
func (s *MemoryStore) Docs(collection string) []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]any, len(s.docs[collection]))
	copy(out, s.docs[collection])
	return out
}

var _ Store = (*MemoryStore)(nil)

// MemoryTransactionScope gives MemoryStore all-or-nothing semantics: it
// snapshots the store before fn and restores the snapshot when fn fails.
type MemoryTransactionScope struct {
	store *MemoryStore
}

func NewMemoryTransactionScope(store *MemoryStore) *MemoryTransactionScope {
	return &MemoryTransactionScope{store: store}
}

func (s *MemoryTransactionScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	s.store.mu.Lock()
	snapshot := make(map[string][]any, len(s.store.docs))
	for coll, docs := range s.store.docs {
		cp := make([]any, len(docs))
		copy(cp, docs)
		snapshot[coll] = cp
	}
	s.store.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.store.mu.Lock()
		s.store.docs = snapshot
		s.store.mu.Unlock()
		return err
	}
	return nil
}
