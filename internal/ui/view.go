package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pawnc/internal/driver"
)

const statusWidth = 10

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-14, 20)
	rows, hidden := m.visibleRows()
	for _, f := range rows {
		label := fmt.Sprintf("%*s", statusWidth, statusLabel(f))
		fmt.Fprintf(&b, "  %s %s", statusStyle(f.status).Render(label), truncate(f.path, nameWidth))
		if f.finished() && f.elapsed > 0 {
			b.WriteString(mutedStyle.Render(" " + f.elapsed.Round(time.Millisecond).String()))
		}
		b.WriteString("\n")
		if f.errText != "" {
			fmt.Fprintf(&b, "  %*s %s\n", statusWidth, "", errorStyle.Render(truncate(f.errText, nameWidth)))
		}
	}
	if hidden > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  ... %d more finished", hidden)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) header() string {
	h := m.title
	if m.stageLabel != "" {
		h = fmt.Sprintf("%s (%s)", h, m.stageLabel)
	}
	if !m.done {
		return m.spinner.View() + " " + h
	}
	h = "done: " + h
	if m.failed > 0 {
		h = fmt.Sprintf("%s, %d failed", h, m.failed)
	}
	return h
}

// visibleRows прячет самые ранние успешно завершённые файлы, если строк больше maxRows.
// Ошибки и незавершённые файлы видны всегда.
func (m *progressModel) visibleRows() ([]fileState, int) {
	excess := len(m.files) - maxRows
	if excess <= 0 {
		return m.files, 0
	}
	rows := make([]fileState, 0, maxRows)
	hidden := 0
	for _, f := range m.files {
		if hidden < excess && f.status == driver.StatusDone {
			hidden++
			continue
		}
		rows = append(rows, f)
	}
	return rows, hidden
}

func statusLabel(f fileState) string {
	if f.status == driver.StatusWorking {
		return stageLabel(f.stage)
	}
	return string(f.status)
}

func stageLabel(stage driver.Stage) string {
	switch stage {
	case driver.StageLoad:
		return "loading"
	case driver.StageTokenize:
		return "lexing"
	case driver.StageParse:
		return "parsing"
	default:
		return ""
	}
}

func statusStyle(status driver.Status) lipgloss.Style {
	switch status {
	case driver.StatusDone:
		return doneStyle
	case driver.StatusError:
		return errorStyle
	case driver.StatusWorking:
		return workingStyle
	default:
		return mutedStyle
	}
}

// truncate режет по ширине в колонках терминала, а не по рунам.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
