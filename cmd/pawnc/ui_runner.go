package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pawnc/internal/driver"
	"pawnc/internal/ui"
)

type parseOutcome struct {
	result *driver.ParseDirResult
	err    error
}

// runParseDirWithUI parses dir while a bubbletea progress view follows the driver events.
func runParseDirWithUI(ctx context.Context, dir string, opts driver.Options) (*driver.ParseDirResult, error) {
	files, err := driver.ListSources(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ParseDir(ctx, dir, optsCopy)
		outcomeCh <- parseOutcome{result: res, err: err}
		close(events)
	}()

	title := fmt.Sprintf("parsing %s", dir)
	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
