package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/forestrie/go-skiplog/skipfile"
	"github.com/forestrie/go-skiplog/skiplist"
	"github.com/spf13/cobra"
)

type dumpFlags struct {
	hex     bool
	records bool
}

func newDumpCmd(a *app) *cobra.Command {
	var df dumpFlags
	cmd := &cobra.Command{
		Use:   "dump PATH",
		Short: "Print every lane of a saved skip list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.lists.LoadRaw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if df.hex {
				fmt.Fprint(w, hex.Dump(data))
			}
			if df.records {
				if err = printRecords(w, data); err != nil {
					return err
				}
			}

			l, err := skipfile.Unmarshal(data, a.listOptions()...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			printLanes(w, l)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&df.hex, "hex", false, "also print a hex dump of the encoded list")
	f.BoolVar(&df.records, "records", false, "also print the raw file records")
	return cmd
}

// printLanes writes one line per populated level, highest first.
func printLanes(w io.Writer, l *skiplist.List) {
	fmt.Fprintf(w, "entries %d, level %d, max level %d\n", l.Len(), l.Level(), l.MaxLevel())
	for level := l.Level(); level >= 0; level-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "level %d: head", level)
		for _, ref := range l.Lane(level) {
			n := l.Node(ref)
			fmt.Fprintf(&sb, " -> %s=%d", n.Key, n.Value)
		}
		fmt.Fprintln(w, sb.String())
	}
}

func printRecords(w io.Writer, data []byte) error {
	h, err := skipfile.Scan(data, func(rec skipfile.Record) error {
		switch rec.Tag {
		case skipfile.TagNode:
			n := rec.Node
			if n.HasValue {
				fmt.Fprintf(w, "%6d node %d: %s=%d capacity %d\n", rec.Offset, rec.Index, n.Key, n.Value, n.LevelCapacity())
			} else {
				fmt.Fprintf(w, "%6d node %d: %s capacity %d\n", rec.Offset, rec.Index, n.Key, n.LevelCapacity())
			}
		case skipfile.TagLane:
			fmt.Fprintf(w, "%6d lane %d: %v\n", rec.Offset, rec.Level, rec.Indices)
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "header level %d\n", h.Level)
	return nil
}
