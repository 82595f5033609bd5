package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mutk-project/relgraph/pkg/observability"
)

func newTestInspectModel() inspectModel {
	statuses := make(map[observability.Stage]stageStatus, len(inspectStages))
	for _, s := range inspectStages {
		statuses[s] = statusPending
	}
	return inspectModel{
		events:    make(chan tea.Msg, 1),
		statuses:  statuses,
		durations: make(map[observability.Stage]time.Duration),
	}
}

func TestInspectModelTracksStageProgress(t *testing.T) {
	m := newTestInspectModel()

	updated, _ := m.Update(stageUpdateMsg{stage: observability.StageBuild, status: statusRunning})
	m = updated.(inspectModel)
	if m.statuses[observability.StageBuild] != statusRunning {
		t.Error("expected StageBuild to be running")
	}

	updated, _ = m.Update(stageUpdateMsg{stage: observability.StageBuild, status: statusDone, duration: 5 * time.Millisecond})
	m = updated.(inspectModel)
	if m.statuses[observability.StageBuild] != statusDone {
		t.Error("expected StageBuild to be done")
	}
	if m.durations[observability.StageBuild] != 5*time.Millisecond {
		t.Errorf("duration = %v, want 5ms", m.durations[observability.StageBuild])
	}

	view := m.View()
	if !strings.Contains(view, string(observability.StageBuild)) {
		t.Errorf("View() missing stage name:\n%s", view)
	}
}

func TestInspectModelRecordsCompileError(t *testing.T) {
	m := newTestInspectModel()

	updated, cmd := m.Update(compileDoneMsg{err: errFake})
	m = updated.(inspectModel)
	if !m.done {
		t.Error("expected model to be marked done")
	}
	if cmd != nil {
		t.Error("expected no further command after compileDoneMsg")
	}

	view := m.View()
	if !strings.Contains(view, "fake error") {
		t.Errorf("View() missing error message:\n%s", view)
	}
}

func TestInspectModelQuitsOnKeypress(t *testing.T) {
	m := newTestInspectModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("expected a quit command on 'q'")
	}
}

var errFake = fakeErr("fake error")

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
