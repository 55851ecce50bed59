package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"visab/internal/logger"
	"visab/internal/tui"
)

func chatCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the bot in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			// The TUI owns the terminal, so logs only go to the configured file.
			log, err := logger.NewFileOnly(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(a.bot, a.summary()), tea.WithAltScreen())
			stopWatch, err := a.watchDocument(func(sentences []string) {
				p.Send(tui.CorpusReloadedMsg{Summary: a.summary(), Sentences: len(sentences)})
			})
			if err != nil {
				return err
			}
			defer stopWatch()

			_, err = p.Run()
			return err
		},
	}
}
