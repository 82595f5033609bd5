package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mutk-project/relgraph/pkg/compiler"
	"github.com/mutk-project/relgraph/pkg/observability"
	"github.com/mutk-project/relgraph/pkg/pedigree/tomlfixture"
)

// inspectCommand creates the "inspect" command: a Bubble Tea program that
// runs a compile in a goroutine and streams C2..C8 stage-completion events
// into a live checklist, the same "spinner watches an async operation"
// pattern the teacher uses for its dependency-resolution progress UI.
func (c *CLI) inspectCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect <pedigree.toml>",
		Short: "Watch a pedigree compile through each pipeline stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := tomlfixture.Load(args[0])
			if err != nil {
				return err
			}

			comp, err := c.newCompiler(noCache)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(newInspectModel(comp, fx)).Run()
			if err != nil {
				return err
			}
			return final.(inspectModel).compileErr
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the plan cache")
	return cmd
}

var inspectStages = []observability.Stage{
	observability.StageBuild,
	observability.StageAttach,
	observability.StageScale,
	observability.StagePrune,
	observability.StageSimplify,
	observability.StageFinalize,
	observability.StageEliminate,
}

type stageStatus int

const (
	statusPending stageStatus = iota
	statusRunning
	statusDone
	statusFailed
)

type stageUpdateMsg struct {
	stage    observability.Stage
	status   stageStatus
	duration time.Duration
}

type compileDoneMsg struct{ err error }

// channelHooks is the observability.Hooks implementation registered for the
// duration of one inspect run; it forwards every event onto a channel the
// Bubble Tea model reads from.
type channelHooks struct {
	events chan tea.Msg
}

func (h channelHooks) OnStageStart(_ context.Context, _ uuid.UUID, stage observability.Stage) {
	h.events <- stageUpdateMsg{stage: stage, status: statusRunning}
}

func (h channelHooks) OnStageComplete(_ context.Context, _ uuid.UUID, stage observability.Stage, duration time.Duration, err error) {
	status := statusDone
	if err != nil {
		status = statusFailed
	}
	h.events <- stageUpdateMsg{stage: stage, status: status, duration: duration}
}

type inspectModel struct {
	events     chan tea.Msg
	statuses   map[observability.Stage]stageStatus
	durations  map[observability.Stage]time.Duration
	compileErr error
	done       bool
}

func newInspectModel(comp *compiler.Compiler, fx tomlfixture.Fixture) inspectModel {
	events := make(chan tea.Msg, len(inspectStages)*2+1)
	observability.SetHooks(channelHooks{events: events})

	go func() {
		err := comp.Construct(context.Background(), fx.Pedigree, fx.Options)
		events <- compileDoneMsg{err: err}
	}()

	statuses := make(map[observability.Stage]stageStatus, len(inspectStages))
	for _, s := range inspectStages {
		statuses[s] = statusPending
	}

	return inspectModel{
		events:    events,
		statuses:  statuses,
		durations: make(map[observability.Stage]time.Duration, len(inspectStages)),
	}
}

func waitForEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-events }
}

func (m inspectModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case stageUpdateMsg:
		m.statuses[msg.stage] = msg.status
		if msg.duration > 0 {
			m.durations[msg.stage] = msg.duration
		}
		return m, waitForEvent(m.events)
	case compileDoneMsg:
		m.done = true
		m.compileErr = msg.err
		observability.Reset()
		return m, nil
	}
	return m, waitForEvent(m.events)
}

func (m inspectModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Compiling pedigree"))
	b.WriteString("\n\n")

	for _, stage := range inspectStages {
		var mark string
		switch m.statuses[stage] {
		case statusDone:
			mark = styleIconSuccess.Render(iconSuccess)
		case statusFailed:
			mark = styleIconError.Render(iconError)
		case statusRunning:
			mark = styleIconSpinner.Render("…")
		default:
			mark = StyleDim.Render("·")
		}
		line := fmt.Sprintf("%s %s", mark, string(stage))
		if d := m.durations[stage]; d > 0 {
			line += " " + StyleDim.Render(d.Round(time.Millisecond).String())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.done && m.compileErr != nil {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError) + " " + m.compileErr.Error())
		b.WriteString("\n")
	}
	if m.done {
		b.WriteString("\n" + StyleDim.Render("press q to exit") + "\n")
	}

	return b.String()
}
