package ui

import tea "github.com/charmbracelet/bubbletea"

// Run takes over the terminal and blocks until the user quits. The
// alternate screen keeps the shell scrollback intact.
func Run(svc FeedService, identity string) error {
	p := tea.NewProgram(NewApp(svc, identity), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
