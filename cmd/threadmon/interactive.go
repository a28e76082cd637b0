package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theSherwood/threadcore/control"
	"github.com/theSherwood/threadcore/thread"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type threadRow struct {
	handle  *thread.Void
	started time.Time
	pinned  int // -1 when unpinned
}

type monitorModel struct {
	input   textinput.Model
	rows    []*threadRow
	err     error
	nextCPU int
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newMonitorModel() *monitorModel {
	in := textinput.New()
	in.Placeholder = "thread count"
	in.CharLimit = 4
	in.Width = 12
	in.Focus()
	return &monitorModel{input: in}
}

func (m *monitorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m *monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			for _, r := range m.rows {
				r.handle.Close()
			}
			return m, tea.Quit

		case "enter":
			m.err = nil
			n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil || n < 1 {
				m.err = fmt.Errorf("enter a positive thread count")
				return m, nil
			}
			m.spawn(n)
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *monitorModel) spawn(n int) {
	for i := 0; i < n; i++ {
		lifetime := time.Duration(1+rand.Intn(5)) * time.Second
		th, err := thread.CreateVoid(func() {
			time.Sleep(lifetime)
		})
		if err != nil {
			m.err = err
			return
		}

		cpu := m.nextCPU % runtime.NumCPU()
		m.nextCPU++
		pinned := cpu
		if err := th.PinToCPU(cpu); err != nil {
			pinned = -1
		}

		m.rows = append(m.rows, &threadRow{
			handle:  th,
			started: time.Now(),
			pinned:  pinned,
		})
	}
}

func (m *monitorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("threadmon"))
	b.WriteString("\n\n")

	stats := control.Stats()
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"blocks: %d live / %d allocated / %d freed",
		stats.Live, stats.Allocated, stats.Freed,
	)))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("no threads yet"))
		b.WriteString("\n")
	}
	for i, r := range m.rows {
		state := doneStyle.Render("done   ")
		if r.handle.Running() {
			state = runningStyle.Render("running")
		}
		pin := "-"
		if r.pinned >= 0 {
			pin = strconv.Itoa(r.pinned)
		}
		b.WriteString(fmt.Sprintf("  #%-3d %s  id %-8d cpu %-3s age %s\n",
			i, state, r.handle.NativeHandle(), pin,
			time.Since(r.started).Round(time.Second)))
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: spawn threads • q: quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newMonitorModel())
	_, err := p.Run()
	return err
}
