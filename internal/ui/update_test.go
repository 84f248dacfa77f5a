package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"lumberjack/internal/cloudwatch"
	"lumberjack/internal/prefs"
	"lumberjack/internal/worker"
)

type stubService struct {
	entries  []cloudwatch.LogEntry
	groups   []string
	fetchErr error
	listErr  error
}

func (s *stubService) FetchRecentLogs(context.Context, cloudwatch.FetchParams) ([]cloudwatch.LogEntry, error) {
	return s.entries, s.fetchErr
}

func (s *stubService) ListLogGroups(context.Context, cloudwatch.ListGroupsParams) ([]string, error) {
	return s.groups, s.listErr
}

func newTestModel(t *testing.T, svc cloudwatch.Service) (*Model, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	bridge := worker.Start(ctx, svc, zerolog.Nop())
	m := New(Options{Bridge: bridge, Prefs: prefs.Prefs{}, Log: zerolog.Nop(), Version: "test"})
	return &m, cancel
}

func waitFetchSettled(t *testing.T, m *Model) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for m.fetching {
		if time.Now().After(deadline) {
			t.Fatal("fetch never settled")
		}
		m.pollPending()
		time.Sleep(2 * time.Millisecond)
	}
}

func waitGroupsSettled(t *testing.T, m *Model) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for m.loadingGroups {
		if time.Now().After(deadline) {
			t.Fatal("group load never settled")
		}
		m.pollPending()
		time.Sleep(2 * time.Millisecond)
	}
}

// press routes a key through Update and keeps the evolved model.
func press(t *testing.T, m *Model, msg tea.KeyMsg) {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	*m = next
}

func TestStartFetch_EndToEnd(t *testing.T) {
	svc := &stubService{entries: []cloudwatch.LogEntry{
		{TimestampMillis: 1, Message: "one"},
		{TimestampMillis: 2, Message: "two"},
	}}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.inputs[focusGroup].SetValue("/my/group")
	m.startFetch()

	if !m.fetching {
		t.Fatal("fetching flag not set after startFetch")
	}
	waitFetchSettled(t, m)

	if len(m.state.Entries) != 2 || m.state.Entries[0].Message != "one" || m.state.Entries[1].Message != "two" {
		t.Errorf("entries = %+v, want the stub's two entries in order", m.state.Entries)
	}
	if m.lastErr != "" {
		t.Errorf("lastErr = %q, want empty", m.lastErr)
	}
	if m.fetchPending != nil {
		t.Error("pending handle not dropped")
	}
}

func TestStartFetch_EmptyGroupIsValidationFailure(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.inputs[focusGroup].SetValue("   ")
	m.startFetch()

	if m.fetching {
		t.Error("fetching flag set for an invalid request")
	}
	if m.fetchPending != nil {
		t.Error("a request was sent despite validation failure")
	}
	if m.lastErr != groupRequiredMsg {
		t.Errorf("lastErr = %q, want %q", m.lastErr, groupRequiredMsg)
	}
}

func TestStartFetch_SecondAttemptIsNoOp(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.inputs[focusGroup].SetValue("/g")
	m.startFetch()
	first := m.fetchPending
	m.startFetch()

	if m.fetchPending != first {
		t.Error("second startFetch replaced the pending handle")
	}
}

func TestPollPending_EmptyChannelLeavesStateUnchanged(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	pending := make(chan worker.FetchResult, 1)
	m.fetchPending = pending
	m.fetching = true
	m.state.Entries = []cloudwatch.LogEntry{{Message: "keep"}}

	for i := 0; i < 10; i++ {
		m.pollPending()
	}

	if !m.fetching {
		t.Error("in-flight flag cleared with no result available")
	}
	if m.fetchPending == nil {
		t.Error("pending handle dropped with no result available")
	}
	if len(m.state.Entries) != 1 || m.state.Entries[0].Message != "keep" {
		t.Errorf("entries mutated: %+v", m.state.Entries)
	}
}

func TestPollPending_GroupFailureKeepsList(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.state.AvailableGroups = []string{"/a", "/b"}
	pending := make(chan worker.ListGroupsResult, 1)
	pending <- worker.ListGroupsResult{Err: &cloudwatch.ListGroupsError{Region: "eu-west-1", Err: errors.New("denied")}}
	m.groupsPending = pending
	m.loadingGroups = true

	m.pollPending()

	if m.loadingGroups {
		t.Error("in-flight flag still set after failure")
	}
	if m.lastErr == "" {
		t.Error("error not recorded")
	}
	if len(m.state.AvailableGroups) != 2 {
		t.Errorf("group list changed by the failure path: %v", m.state.AvailableGroups)
	}
}

func TestPollPending_SelectionRevalidatedAfterRefresh(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		groups   []string
		want     int
	}{
		{"out of range cleared", 3, []string{"/a", "/b"}, -1},
		{"still valid preserved", 1, []string{"/a", "/b"}, 1},
		{"empty list cleared", 0, nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			m, cancel := newTestModel(t, svc)
			defer cancel()

			m.state.SelectedGroup = tt.selected
			pending := make(chan worker.ListGroupsResult, 1)
			pending <- worker.ListGroupsResult{Groups: tt.groups}
			m.groupsPending = pending
			m.loadingGroups = true

			m.pollPending()

			if m.state.SelectedGroup != tt.want {
				t.Errorf("SelectedGroup = %d, want %d", m.state.SelectedGroup, tt.want)
			}
		})
	}
}

func TestPollPending_WorkerGoneStopsWaiting(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)

	m.fetchPending = make(chan worker.FetchResult, 1)
	m.fetching = true

	cancel()
	select {
	case <-m.bridge.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not shut down")
	}

	m.pollPending()

	if m.fetching {
		t.Error("in-flight flag still set after worker death")
	}
	if m.fetchPending != nil {
		t.Error("pending handle not dropped after worker death")
	}
	if m.lastInfo != workerGoneMsg {
		t.Errorf("lastInfo = %q, want %q", m.lastInfo, workerGoneMsg)
	}
	if m.lastErr != "" {
		t.Errorf("lastErr = %q, want empty (no error is synthesized)", m.lastErr)
	}
}

func TestEvalTail_TriggersExactlyAtInterval(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m.inputs[focusGroup].SetValue("/my/group")
	m.state.TailMode = true
	m.state.TailIntervalSecs = 5
	m.state.LastTailAt = base

	// 4.9s elapsed: not due.
	m.now = func() time.Time { return base.Add(4900 * time.Millisecond) }
	m.evalTail()
	if m.fetching {
		t.Fatal("tail fired before the interval elapsed")
	}

	// 5.0s elapsed: exactly one fetch.
	m.now = func() time.Time { return base.Add(5 * time.Second) }
	m.evalTail()
	if !m.fetching {
		t.Fatal("tail did not fire at the interval")
	}
	if !m.state.LastTailAt.Equal(base.Add(5 * time.Second)) {
		t.Errorf("LastTailAt = %v, want trigger time", m.state.LastTailAt)
	}

	// Still in flight: no second trigger.
	pending := m.fetchPending
	m.now = func() time.Time { return base.Add(20 * time.Second) }
	m.evalTail()
	if m.fetchPending != pending {
		t.Error("tail fired while a fetch was in flight")
	}
}

func TestEvalTail_FiresImmediatelyWhenNeverTriggered(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.inputs[focusGroup].SetValue("/g")
	m.state.TailMode = true
	m.state.LastTailAt = time.Time{}

	m.evalTail()
	if !m.fetching {
		t.Error("tail with no prior trigger should fire immediately")
	}
}

func TestEvalTail_DisablingResetsMarker(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.state.TailMode = false
	m.state.LastTailAt = time.Now()
	m.evalTail()

	if !m.state.LastTailAt.IsZero() {
		t.Error("disabling tail did not reset the trigger marker")
	}
}

func TestFilterTypingRefreshesViewport(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.state.Entries = []cloudwatch.LogEntry{
		{TimestampMillis: 1, Message: "alpha line"},
		{TimestampMillis: 2, Message: "beta line"},
	}
	m.refreshLogView()
	if got := m.logs.View(); !strings.Contains(got, "alpha line") || !strings.Contains(got, "beta line") {
		t.Fatalf("initial render missing entries: %q", got)
	}

	// Move focus from the group input to the filter input and type.
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("beta")})

	got := m.logs.View()
	if strings.Contains(got, "alpha line") {
		t.Errorf("viewport still shows a filtered-out entry: %q", got)
	}
	if !strings.Contains(got, "beta line") {
		t.Errorf("viewport lost the matching entry: %q", got)
	}
}

func TestGroupPicker_OpenNavigateChoose(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.state.AvailableGroups = []string{"/a", "/b", "/c"}

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if !m.picker {
		t.Fatal("picker did not open")
	}
	if m.pickerIndex != 0 {
		t.Fatalf("pickerIndex = %d, want 0 with no prior selection", m.pickerIndex)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.picker {
		t.Error("picker still open after choosing")
	}
	if m.state.SelectedGroup != 2 {
		t.Errorf("SelectedGroup = %d, want 2", m.state.SelectedGroup)
	}
	if m.state.LogGroup != "/c" {
		t.Errorf("LogGroup = %q, want /c", m.state.LogGroup)
	}
	if got := m.inputs[focusGroup].Value(); got != "/c" {
		t.Errorf("group input = %q, want /c", got)
	}
}

func TestGroupPicker_WrapsAndSeedsFromSelection(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.state.AvailableGroups = []string{"/a", "/b", "/c"}
	m.state.SelectedGroup = 2

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.pickerIndex != 2 {
		t.Fatalf("pickerIndex = %d, want the current selection", m.pickerIndex)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.pickerIndex != 0 {
		t.Errorf("pickerIndex = %d, want wrap to 0", m.pickerIndex)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.pickerIndex != 2 {
		t.Errorf("pickerIndex = %d, want wrap back to 2", m.pickerIndex)
	}
}

func TestGroupPicker_EscCancelsWithoutSelecting(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.state.AvailableGroups = []string{"/a", "/b"}
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	if m.picker {
		t.Error("picker still open after esc")
	}
	if m.state.SelectedGroup != -1 {
		t.Errorf("SelectedGroup = %d, want untouched -1", m.state.SelectedGroup)
	}
	if m.state.LogGroup != "" {
		t.Errorf("LogGroup = %q, want untouched", m.state.LogGroup)
	}
}

func TestGroupPicker_NeedsLoadedGroups(t *testing.T) {
	svc := &stubService{}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})

	if m.picker {
		t.Error("picker opened with no groups loaded")
	}
	if m.lastInfo != noGroupsMsg {
		t.Errorf("lastInfo = %q, want %q", m.lastInfo, noGroupsMsg)
	}
}

func TestStartLoadGroups_OptimisticClear(t *testing.T) {
	svc := &stubService{groups: []string{"/fresh"}}
	m, cancel := newTestModel(t, svc)
	defer cancel()

	m.state.AvailableGroups = []string{"/stale-a", "/stale-b"}
	m.state.SelectedGroup = 1

	m.startLoadGroups()

	if len(m.state.AvailableGroups) != 0 {
		t.Error("group list not cleared at request start")
	}
	if m.state.SelectedGroup != -1 {
		t.Error("selection not cleared at request start")
	}

	waitGroupsSettled(t, m)
	if len(m.state.AvailableGroups) != 1 || m.state.AvailableGroups[0] != "/fresh" {
		t.Errorf("groups = %v, want the fresh list", m.state.AvailableGroups)
	}
}
