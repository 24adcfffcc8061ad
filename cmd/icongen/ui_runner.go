package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"canviewtools/internal/icon"
	"canviewtools/internal/ui"
)

type genOutcome struct {
	result icon.Result
	err    error
}

// runGenerateWithUI runs the generator in a goroutine feeding a buffered
// event channel while the Bubble Tea model renders it. The generator itself
// stays sequential; the only concurrency is this one display goroutine pair.
func runGenerateWithUI(title string, names []string, gen *icon.Generator) (icon.Result, error) {
	events := make(chan icon.Event, 64)
	outcomeCh := make(chan genOutcome, 1)

	go func() {
		genCopy := *gen
		genCopy.Progress = icon.ChannelSink{Ch: events}
		res, err := genCopy.Run()
		outcomeCh <- genOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
