package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// BuildChunk turns one chunk's items into the caller's request fields.
// The submitter adds chunkIndex and totalChunks on top before posting.
type BuildChunk[T any] func(items []T, chunkIndex int) map[string]any

// Submitter posts chunked submissions and tracks progress in a checkpoint
// store. The zero timeout of http.DefaultClient applies unless the caller
// supplies a configured client.
type Submitter struct {
	HTTPClient  *http.Client
	Checkpoints CheckpointStore
}

func NewSubmitter(httpClient *http.Client, checkpoints CheckpointStore) *Submitter {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Submitter{HTTPClient: httpClient, Checkpoints: checkpoints}
}

// SubmitInChunks splits items into ceil(len/chunkSize) chunks and posts them
// to endpoint one at a time, strictly in order. After every acknowledged
// chunk the checkpoint under key advances to the next index; once all chunks
// are acknowledged the checkpoint is cleared. On any failure the function
// returns immediately, leaving the checkpoint at the failed chunk, so calling
// again with the same key resumes there instead of restarting from zero.
//
// A chunk the server applied but whose acknowledgement was lost will be
// posted again on resume; pair the payload with a stable per-chunk requestId
// (see ChunkRequestID) so the server can absorb the replay.
func SubmitInChunks[T any](ctx context.Context, s *Submitter, endpoint, key string, items []T, chunkSize int, build BuildChunk[T]) error {
	if chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	totalChunks := (len(items) + chunkSize - 1) / chunkSize

	start, err := s.Checkpoints.Get(key)
	if err != nil {
		return err
	}

	for index := start; index < totalChunks; index++ {
		lo := index * chunkSize
		hi := lo + chunkSize
		if hi > len(items) {
			hi = len(items)
		}

		payload := build(items[lo:hi], index)
		if payload == nil {
			payload = map[string]any{}
		}
		payload["chunkIndex"] = index
		payload["totalChunks"] = totalChunks

		if err := s.postChunk(ctx, endpoint, payload); err != nil {
			return fmt.Errorf("chunk %d/%d: %w", index, totalChunks, err)
		}

		if err := s.Checkpoints.Put(key, index+1); err != nil {
			return err
		}
	}

	return s.Checkpoints.Clear(key)
}

func (s *Submitter) postChunk(ctx context.Context, endpoint string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}

// ChunkRequestID derives the stable per-chunk request id used for server-side
// deduplication of resubmitted chunks.
func ChunkRequestID(key string, chunkIndex int) string {
	return fmt.Sprintf("%s-%d", key, chunkIndex)
}
