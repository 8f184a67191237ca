package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// refreshEvery is how often the watch view re-reads the document. Each
// refresh is a full locked read; one status per interval keeps contention
// with punches from other machines negligible.
const refreshEvery = 2 * time.Second

type watchKeyMap struct {
	Quit key.Binding
}

var watchKeys = watchKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type statusMsg struct {
	status *service.PunchStatus
	err    error
}

type tickMsg time.Time

type watchModel struct {
	punch     service.PunchService
	account   domain.AccountID
	status    *service.PunchStatus
	err       error
	now       time.Time
	lastFetch time.Time
}

func newWatchModel(punch service.PunchService, account domain.AccountID) watchModel {
	now := time.Now()
	return watchModel{punch: punch, account: account, now: now, lastFetch: now}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.fetchStatus, watchTick())
}

func (m watchModel) fetchStatus() tea.Msg {
	status, err := m.punch.Status(context.Background(), m.account)
	return statusMsg{status: status, err: err}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, watchKeys.Quit) {
			return m, tea.Quit
		}
	case statusMsg:
		m.status = msg.status
		m.err = msg.err
	case tickMsg:
		m.now = time.Time(msg)
		cmds := []tea.Cmd{watchTick()}
		if m.now.Sub(m.lastFetch) >= refreshEvery {
			m.lastFetch = m.now
			cmds = append(cmds, m.fetchStatus)
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	}
	if m.status == nil {
		return formatter.Dim("loading…") + "\n"
	}

	s := fmt.Sprintf("%s  %s\n", formatter.StatePill(m.status.State), formatter.Dim(string(m.account)))
	if sess := m.status.Session; sess != nil {
		s += fmt.Sprintf("Project: %s\n", formatter.Bold(sess.Project))
		s += fmt.Sprintf("Since:   %s\n", formatter.Clock(sess.Start))
		s += fmt.Sprintf("Worked:  %s\n", formatter.Elapsed(liveWorked(sess, m.now)))
	}
	s += formatter.Dim("q to quit") + "\n"
	return s
}

// liveWorked is the second-resolution net working duration for the view;
// stored reports stay minute-based.
func liveWorked(s *domain.Session, now time.Time) time.Duration {
	worked := now.Sub(s.Start)
	for _, b := range s.Breaks {
		end := now
		if b.End != nil {
			end = *b.End
		}
		worked -= end.Sub(b.Start)
	}
	return worked
}
