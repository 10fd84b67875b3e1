// Package ui renders a live per-file progress view for directory runs.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pawnc/internal/driver"
)

// maxRows: сколько файлов видно одновременно; остальное сворачивается в счётчик.
const maxRows = 16

type progressModel struct {
	title      string
	events     <-chan driver.Event
	spinner    spinner.Model
	bar        progress.Model
	files      []fileState
	index      map[string]int
	stageLabel string
	failed     int
	width      int
	done       bool
}

// fileState: последнее известное состояние файла.
type fileState struct {
	path    string
	stage   driver.Stage
	status  driver.Status
	elapsed time.Duration
	errText string
}

func (f fileState) finished() bool {
	return f.status == driver.StatusDone || f.status == driver.StatusError
}

type (
	eventMsg driver.Event
	doneMsg  struct{}
)

// NewProgressModel returns a Bubble Tea model that renders per-file progress.
// The model quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		files:   make([]fileState, len(files)),
		index:   make(map[string]int, len(files)),
		width:   80,
	}
	for i, path := range files {
		m.files[i] = fileState{path: path, status: driver.StatusQueued}
		m.index[path] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.waitEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		m.bar = updated.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// waitEvent блокируется на канале; закрытый канал завершает программу.
func (m *progressModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	if ev.File == "" {
		// событие уровня прогона: только подпись в заголовке
		if ev.Status == driver.StatusWorking {
			m.stageLabel = stageLabel(ev.Stage)
		}
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	f := &m.files[idx]
	if ev.Status == driver.StatusError && f.status != driver.StatusError {
		m.failed++
	}
	f.stage, f.status = ev.Stage, ev.Status
	if ev.Elapsed > 0 {
		f.elapsed = ev.Elapsed
	}
	if ev.Err != nil {
		f.errText = ev.Err.Error()
	}
	return m.bar.SetPercent(m.percent())
}

// percent: доля работы: готовые файлы считаются целиком, остальные по стадии.
func (m *progressModel) percent() float64 {
	if len(m.files) == 0 {
		return 0
	}
	var total float64
	for _, f := range m.files {
		total += f.weight()
	}
	return total / float64(len(m.files))
}

func (f fileState) weight() float64 {
	if f.finished() {
		return 1
	}
	if f.status == driver.StatusQueued {
		return 0
	}
	switch f.stage {
	case driver.StageLoad:
		return 0.1
	case driver.StageTokenize:
		return 0.4
	case driver.StageParse:
		return 0.6
	}
	return 0
}
