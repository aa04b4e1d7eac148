package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/patrick-campos/Accessories-Assessment-sub000/client"
)

type recordedChunk struct {
	ChunkIndex  int      `json:"chunkIndex"`
	TotalChunks int      `json:"totalChunks"`
	RequestID   string   `json:"requestId"`
	Items       []string `json:"items"`
}

// chunkServer records every posted chunk and can be told to reject a
// specific chunk index a number of times before accepting it.
type chunkServer struct {
	mu        sync.Mutex
	received  []recordedChunk
	rejectIdx int
	rejects   int
}

func newChunkServer() *chunkServer {
	return &chunkServer{rejectIdx: -1}
}

func (cs *chunkServer) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var chunk recordedChunk
	if err := json.Unmarshal(body, &chunk); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if chunk.ChunkIndex == cs.rejectIdx && cs.rejects > 0 {
		cs.rejects--
		http.Error(w, "try again", http.StatusServiceUnavailable)
		return
	}
	cs.received = append(cs.received, chunk)
	w.WriteHeader(http.StatusCreated)
}

func (cs *chunkServer) chunks() []recordedChunk {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]recordedChunk, len(cs.received))
	copy(out, cs.received)
	return out
}

func buildItems(items []string, chunkIndex int) map[string]any {
	return map[string]any{
		"requestId": client.ChunkRequestID("submit-42", chunkIndex),
		"items":     items,
	}
}

func newTestSubmitter(t *testing.T) (*client.Submitter, *client.FileCheckpointStore) {
	t.Helper()
	store, err := client.NewFileCheckpointStore(t.TempDir())
	if err != nil {
		t.Fatalf("checkpoint store: %v", err)
	}
	return client.NewSubmitter(nil, store), store
}

func TestSubmitInChunks_SplitsAndOrders(t *testing.T) {
	cs := newChunkServer()
	srv := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer srv.Close()

	submitter, store := newTestSubmitter(t)
	items := []string{"a", "b", "c", "d", "e"}

	if err := client.SubmitInChunks(context.Background(), submitter, srv.URL, "submit-42", items, 2, buildItems); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	got := cs.chunks()
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(got))
	}
	wantLens := []int{2, 2, 1}
	for i, chunk := range got {
		if chunk.ChunkIndex != i {
			t.Errorf("chunk %d: got index %d", i, chunk.ChunkIndex)
		}
		if chunk.TotalChunks != 3 {
			t.Errorf("chunk %d: got totalChunks %d", i, chunk.TotalChunks)
		}
		if len(chunk.Items) != wantLens[i] {
			t.Errorf("chunk %d: expected %d items, got %d", i, wantLens[i], len(chunk.Items))
		}
		if want := client.ChunkRequestID("submit-42", i); chunk.RequestID != want {
			t.Errorf("chunk %d: expected requestId %q, got %q", i, want, chunk.RequestID)
		}
	}

	if store.Has("submit-42") {
		t.Error("checkpoint must be cleared after a full submission")
	}
}

func TestSubmitInChunks_FailureKeepsCheckpoint(t *testing.T) {
	cs := newChunkServer()
	cs.rejectIdx = 1
	cs.rejects = 1
	srv := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer srv.Close()

	submitter, store := newTestSubmitter(t)
	items := []string{"a", "b", "c", "d", "e"}

	err := client.SubmitInChunks(context.Background(), submitter, srv.URL, "submit-42", items, 2, buildItems)
	if err == nil {
		t.Fatal("expected the rejected chunk to fail the submission")
	}

	if got := len(cs.chunks()); got != 1 {
		t.Fatalf("expected only chunk 0 to land, got %d chunks", got)
	}
	next, err := store.Get("submit-42")
	if err != nil {
		t.Fatalf("checkpoint read: %v", err)
	}
	if next != 1 {
		t.Fatalf("expected checkpoint at chunk 1, got %d", next)
	}
}

func TestSubmitInChunks_ResumesFromCheckpoint(t *testing.T) {
	cs := newChunkServer()
	cs.rejectIdx = 1
	cs.rejects = 1
	srv := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer srv.Close()

	submitter, store := newTestSubmitter(t)
	items := []string{"a", "b", "c", "d", "e"}

	if err := client.SubmitInChunks(context.Background(), submitter, srv.URL, "submit-42", items, 2, buildItems); err == nil {
		t.Fatal("expected the first attempt to fail")
	}

	// second attempt: the server accepts everything, the client starts at 1
	if err := client.SubmitInChunks(context.Background(), submitter, srv.URL, "submit-42", items, 2, buildItems); err != nil {
		t.Fatalf("resume failed: %v", err)
	}

	got := cs.chunks()
	if len(got) != 3 {
		t.Fatalf("expected 3 accepted chunks across both attempts, got %d", len(got))
	}
	wantIdx := []int{0, 1, 2}
	for i, chunk := range got {
		if chunk.ChunkIndex != wantIdx[i] {
			t.Errorf("accepted chunk %d: got index %d, want %d", i, chunk.ChunkIndex, wantIdx[i])
		}
	}
	if store.Has("submit-42") {
		t.Error("checkpoint must be cleared after the resumed submission completes")
	}
}

func TestSubmitInChunks_RejectsBadChunkSize(t *testing.T) {
	submitter, _ := newTestSubmitter(t)
	err := client.SubmitInChunks(context.Background(), submitter, "http://unused", "k", []string{"a"}, 0, buildItems)
	if err == nil {
		t.Fatal("expected a chunk size error")
	}
}

func TestSubmitInChunks_EmptyItems(t *testing.T) {
	cs := newChunkServer()
	srv := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer srv.Close()

	submitter, store := newTestSubmitter(t)
	if err := client.SubmitInChunks(context.Background(), submitter, srv.URL, "empty", []string{}, 2, buildItems); err != nil {
		t.Fatalf("empty submission should succeed as a no-op, got %v", err)
	}
	if got := len(cs.chunks()); got != 0 {
		t.Errorf("expected no requests, got %d", got)
	}
	if store.Has("empty") {
		t.Error("no checkpoint should remain")
	}
}

func TestSubmitInChunks_CheckpointStoreErrorSurfaces(t *testing.T) {
	cs := newChunkServer()
	srv := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer srv.Close()

	wantErr := errors.New("checkpoint unavailable")
	submitter := client.NewSubmitter(nil, failingCheckpoints{err: wantErr})

	err := client.SubmitInChunks(context.Background(), submitter, srv.URL, "k", []string{"a"}, 1, buildItems)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the checkpoint error, got %v", err)
	}
}

type failingCheckpoints struct {
	err error
}

func (f failingCheckpoints) Get(string) (int, error) { return 0, f.err }
func (f failingCheckpoints) Put(string, int) error   { return f.err }
func (f failingCheckpoints) Clear(string) error      { return f.err }
