// Package tui is the terminal study timer: a Bubble Tea model around one
// timer.Timer that submits finished sessions to the API.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studytrack-backend/internal/client"
	"github.com/heartmarshall/studytrack-backend/internal/domain"
	"github.com/heartmarshall/studytrack-backend/internal/timer"
)

const (
	refreshInterval = time.Second
	submitTimeout   = 15 * time.Second
)

type recordSubmitter interface {
	CreateRecord(ctx context.Context, in client.NewRecord) (*client.CreatedRecord, error)
}

type phase int

const (
	phaseTiming phase = iota
	phaseConfirmDiscard
	phaseSubmitting
	phaseSaveFailed
)

// snapshotMsg carries a display refresh from Timer.Watch.
type snapshotMsg timer.Snapshot

type submittedMsg struct {
	out *client.CreatedRecord
	err error
}

// Model is the Bubble Tea model of the study timer screen.
type Model struct {
	timer    *timer.Timer
	records  recordSubmitter
	clock    clockwork.Clock
	subject  string
	category string

	phase phase
	// pending is the stopped session awaiting a save. It survives failed
	// saves until it is stored or explicitly discarded.
	pending     timer.Result
	pendingDate string
	display     timer.Snapshot
	status      string
	err         error
}

// New creates a Model that starts sessions for subject in category.
// A nil clock uses wall time.
func New(records recordSubmitter, subject, category string, clock clockwork.Clock) Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	t := timer.New(clock)
	return Model{
		timer:    t,
		records:  records,
		clock:    clock,
		subject:  subject,
		category: category,
		display:  t.Snapshot(),
	}
}

// Init does nothing; display refreshes arrive from watch.
func (m Model) Init() tea.Cmd {
	return nil
}

// watch feeds timer snapshots to send until ctx is done.
func (m Model) watch(ctx context.Context, send func(tea.Msg)) {
	_ = m.timer.Watch(ctx, refreshInterval, func(s timer.Snapshot) {
		send(snapshotMsg(s))
	})
}

// Update handles keys, display refreshes and submission results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		// A refresh taken before the last key press is stale.
		if msg.State != m.timer.State() {
			m.display = m.timer.Snapshot()
		} else {
			m.display = timer.Snapshot(msg)
		}
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			m.phase = phaseSaveFailed
			m.err = fmt.Errorf("save failed: %w", msg.err)
			m.status = ""
			return m, nil
		}
		m.phase = phaseTiming
		m.pending, m.pendingDate = timer.Result{}, ""
		m.err = nil
		m.status = fmt.Sprintf("Saved %q (%d min): +%d XP", msg.out.Record.Title, msg.out.Record.DurationMinutes, msg.out.XPEarned)
		if msg.out.Score != nil {
			m.status += fmt.Sprintf(", level %d (%d XP)", msg.out.Score.Level, msg.out.Score.TotalXP)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSubmitting:
		return m, nil
	case phaseConfirmDiscard:
		switch key {
		case "y":
			return m.discardPending(), nil
		case "n":
			return m.submit()
		}
		return m, nil
	case phaseSaveFailed:
		// Nothing else may start until the failed session is resolved.
		switch key {
		case "t", "enter":
			m.err = nil
			return m.submit()
		case "d":
			return m.discardPending(), nil
		}
		return m, nil
	}

	switch key {
	case "s", " ":
		m.err = nil
		switch m.timer.State() {
		case timer.Idle:
			if err := m.timer.Start(m.subject, m.category); err != nil {
				m.err = err
				return m, nil
			}
			m.status = ""
		case timer.Running:
			m.err = m.timer.Pause()
		case timer.Paused:
			m.err = m.timer.Resume()
		}
	case "x":
		res, err := m.timer.Stop()
		if err != nil {
			if errors.Is(err, timer.ErrInvalidTransition) {
				m.status = "Nothing to stop."
				return m, nil
			}
			m.err = err
			return m, nil
		}
		m.display = m.timer.Snapshot()
		m.pending = res
		m.pendingDate = recordDate(m.clock.Now())
		if res.NeedsDiscardConfirmation() {
			m.phase = phaseConfirmDiscard
			return m, nil
		}
		return m.submit()
	case "r":
		m.timer.Reset()
		m.err = nil
		m.status = "Timer reset."
	}

	m.display = m.timer.Snapshot()
	return m, nil
}

func (m Model) discardPending() Model {
	m.timer.Reset()
	m.pending, m.pendingDate = timer.Result{}, ""
	m.phase = phaseTiming
	m.err = nil
	m.status = "Session discarded."
	m.display = m.timer.Snapshot()
	return m
}

// recordDate is the UTC calendar day of t, the same day boundary the server
// uses for stats.
func recordDate(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.phase = phaseSubmitting
	m.status = "Saving..."
	in := client.NewRecord{
		Title:           m.pending.Title,
		Category:        m.pending.Category,
		DurationMinutes: m.pending.DurationMinutes,
		Date:            m.pendingDate,
	}
	records := m.records
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		out, err := records.CreateRecord(ctx, in)
		return submittedMsg{out: out, err: err}
	}
}

// View renders the timer screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("StudyTrack timer"))
	b.WriteString("\n\n")

	subject := m.display.Subject
	category := m.display.Category
	if m.display.State == timer.Idle {
		subject, category = m.subject, m.category
	}
	if category == "" {
		category = domain.DefaultCategory
	}
	b.WriteString(labelStyle.Render("Subject:  ") + subject + "\n")
	b.WriteString(labelStyle.Render("Category: ") + category + "\n\n")

	b.WriteString(clockStyle.Render(FormatSeconds(m.display.DisplaySeconds)))
	b.WriteString("\n")
	b.WriteString(stateLabel(m.display.State))
	b.WriteString("\n\n")

	switch {
	case m.phase == phaseConfirmDiscard:
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"Session was only %ds. Discard it? (y = discard, n = save anyway)", m.pending.RawSeconds)))
		b.WriteString("\n")
	case m.phase == phaseSaveFailed:
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"%d min session not saved. t = retry, d = discard", m.pending.DurationMinutes)))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(successStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s/space start·pause·resume   x stop   r reset   q quit"))
	b.WriteString("\n")
	return b.String()
}

func stateLabel(s timer.State) string {
	switch s {
	case timer.Running:
		return runningStyle.Render("● running")
	case timer.Paused:
		return pausedStyle.Render("❚❚ paused")
	default:
		return idleStyle.Render("○ idle")
	}
}

// FormatSeconds renders seconds as MM:SS, or H:MM:SS from one hour on.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Run starts the timer screen and blocks until the user quits.
func Run(records recordSubmitter, subject, category string) error {
	m := New(records, subject, category, nil)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.watch(ctx, p.Send)

	_, err := p.Run()
	return err
}
