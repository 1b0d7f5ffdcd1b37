package responselog

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/oklog/ulid/v2"

	console "github.com/fmitra/bankconsole"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	}
}

func TestResponseLog_RetainsNewestSix(t *testing.T) {
	svc := NewService(WithClock(fixedClock()))

	for i := 1; i <= 9; i++ {
		svc.Record(console.LogEntry{
			Label:   fmt.Sprintf("Request %d", i),
			Status:  console.HTTPStatus(200),
			Payload: console.TextPayload("ok"),
		})

		entries := svc.Entries()
		if len(entries) > 6 {
			t.Fatalf("log retained %d entries, want at most 6", len(entries))
		}
		if entries[0].Label != fmt.Sprintf("Request %d", i) {
			t.Errorf("newest entry is not first, got '%s'", entries[0].Label)
		}
	}

	var labels []string
	for _, e := range svc.Entries() {
		labels = append(labels, e.Label)
	}
	expected := []string{
		"Request 9", "Request 8", "Request 7",
		"Request 6", "Request 5", "Request 4",
	}
	if !cmp.Equal(labels, expected) {
		t.Error("retained entries do not match", cmp.Diff(labels, expected))
	}
}

func TestResponseLog_AssignsIDAndTimestamp(t *testing.T) {
	svc := NewService(WithClock(fixedClock()))

	entry := svc.Record(console.LogEntry{Label: "Profile", Status: console.HTTPStatus(200)})
	if !entry.Timestamp.Equal(fixedClock()()) {
		t.Errorf("timestamp does not match, want %v got %v", fixedClock()(), entry.Timestamp)
	}
	if _, err := ulid.Parse(entry.ID); err != nil {
		t.Error("invalid ID generated for entry:", err)
	}

	ts := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	kept := svc.Record(console.LogEntry{ID: "given", Timestamp: ts})
	if kept.ID != "given" || !kept.Timestamp.Equal(ts) {
		t.Error("existing ID and timestamp should be kept", kept.ID, kept.Timestamp)
	}
}

func TestResponseLog_String(t *testing.T) {
	svc := NewService(WithClock(fixedClock()))

	svc.Record(console.LogEntry{
		Label:   "Accounts",
		Status:  console.HTTPStatus(204),
		Payload: console.ParsePayload([]byte("")),
	})
	svc.Record(console.LogEntry{
		Label:   "Login",
		Status:  console.HTTPStatus(200),
		Payload: console.ParsePayload([]byte(`{"data":{"access_token":"a"}}`)),
	})
	svc.Record(console.LogEntry{
		Label:   "Profile",
		Status:  console.StatusNetwork,
		Payload: console.TextPayload("connection refused"),
		IsError: true,
	})

	expected := strings.Join([]string{
		"09:30:00 · Profile (network)\nconnection refused",
		"09:30:00 · Login (200)\n{\n  \"data\": {\n    \"access_token\": \"a\"\n  }\n}",
		"09:30:00 · Accounts (204)\n<empty response>",
	}, "\n\n\n")

	if svc.String() != expected {
		t.Error("rendered log does not match", cmp.Diff(svc.String(), expected))
	}
}

func TestResponseLog_Failed(t *testing.T) {
	svc := NewService()
	if svc.Failed() {
		t.Error("empty log should not be failed")
	}

	svc.Record(console.LogEntry{Label: "Login", IsError: true})
	if !svc.Failed() {
		t.Error("expected log to be failed after an error entry")
	}

	svc.Record(console.LogEntry{Label: "Login"})
	if svc.Failed() {
		t.Error("expected log to recover after a successful entry")
	}
}

func TestResponseLog_ConcurrentRecord(t *testing.T) {
	svc := NewService(WithCapacity(4))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc.Record(console.LogEntry{Label: fmt.Sprintf("Request %d", i)})
		}(i)
	}
	wg.Wait()

	entries := svc.Entries()
	if len(entries) != 4 {
		t.Errorf("log retained %d entries, want 4", len(entries))
	}

	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.ID] {
			t.Error("duplicate entry ID:", e.ID)
		}
		seen[e.ID] = true
	}
}
