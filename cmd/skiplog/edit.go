package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search PATH VALUE...",
		Short: "Report the key stored with each value.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			l, err := a.lists.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, v := range values {
				if key, ok := l.Find(v); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", v, key)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%d not found\n", v)
				}
			}
			return nil
		},
	}
}

func newInsertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "insert PATH KEY=VALUE...",
		Short: "Add entries to a saved skip list.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := parseEntries(args[1:])
			if err != nil {
				return err
			}
			l, err := a.lists.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err = insertAll(l, entries); err != nil {
				return err
			}
			return a.lists.Save(cmd.Context(), args[0], l)
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PATH VALUE...",
		Short: "Remove values from a saved skip list.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			l, err := a.lists.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var changed bool
			for _, v := range values {
				removed, err := l.Remove(v)
				if err != nil {
					return err
				}
				if removed {
					fmt.Fprintf(cmd.OutOrStdout(), "%d removed\n", v)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%d not found\n", v)
				}
				changed = changed || removed
			}
			if !changed {
				return nil
			}
			return a.lists.Save(cmd.Context(), args[0], l)
		},
	}
}
