package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"visab/internal/logger"
)

func askCmd(cfgPath *string) *cobra.Command {
	var showKind bool
	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			log, err := logger.NewFileOnly(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			reply := a.bot.Answer(strings.Join(args, " "))
			if showKind {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] ", reply.Kind)
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showKind, "kind", false, "prefix the answer with the path that produced it")
	return cmd
}
