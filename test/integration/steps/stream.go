//go:build integration

package steps

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const streamWait = 5 * time.Second

// eventStream reads server-sent events from an open stream response.
type eventStream struct {
	cancel   context.CancelFunc
	events   chan sseEvent
	snapshot map[string]any
}

type sseEvent struct {
	name string
	data string
}

func (t *testContext) iOpenTheStream(collection string) error {
	t.closeStream()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.uri+"/api/v1/stream/"+collection, nil)
	if err != nil {
		cancel()
		return err
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	// The stream outlives the scenario client's timeout.
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return fmt.Errorf("stream for %s expected 200, got %d", collection, resp.StatusCode)
	}

	stream := &eventStream{
		cancel: cancel,
		events: make(chan sseEvent, 16),
	}
	go func() {
		defer resp.Body.Close()
		defer close(stream.events)

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		var current sseEvent
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event:"):
				current.name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			case strings.HasPrefix(line, "data:"):
				current.data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			case line == "":
				if current.name != "" {
					select {
					case stream.events <- current:
					case <-ctx.Done():
						return
					}
				}
				current = sseEvent{}
			}
		}
	}()

	t.stream = stream
	return nil
}

// theStreamShouldDeliverASnapshotWithItems waits for a snapshot holding the
// given number of records. Earlier snapshots are skipped since bursts of
// changes may be coalesced.
func (t *testContext) theStreamShouldDeliverASnapshotWithItems(quantity int) error {
	if t.stream == nil {
		return errors.New("no stream is open")
	}

	deadline := time.After(streamWait)
	lastCount := -1
	for {
		select {
		case event, ok := <-t.stream.events:
			if !ok {
				return errors.New("stream closed before the expected snapshot arrived")
			}
			if event.name == "error" {
				return fmt.Errorf("stream reported an error: %s", event.data)
			}
			if event.name != "snapshot" {
				continue
			}
			var snapshot map[string]any
			if err := json.Unmarshal([]byte(event.data), &snapshot); err != nil {
				return fmt.Errorf("snapshot is not valid JSON: %w", err)
			}
			count, _ := snapshot["count"].(float64)
			lastCount = int(count)
			if lastCount == quantity {
				t.stream.snapshot = snapshot
				return nil
			}
		case <-deadline:
			return fmt.Errorf("expected a snapshot with %d items within %s, last one had %d", quantity, streamWait, lastCount)
		}
	}
}

func (t *testContext) theStreamSnapshotFieldShouldBe(field, expectedValue string) error {
	if t.stream == nil || t.stream.snapshot == nil {
		return errors.New("no snapshot received")
	}

	value := getFieldValue(t.stream.snapshot, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in snapshot: %v", field, t.stream.snapshot)
	}
	if actual := fmt.Sprintf("%v", value); actual != expectedValue {
		return fmt.Errorf("snapshot field '%s' expected '%s', got '%s'", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) closeStream() {
	if t.stream != nil {
		t.stream.cancel()
		t.stream = nil
	}
}
