package main

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/forestrie/go-skiplog/skiplist"
	"github.com/spf13/cobra"
)

// demoEntries are inserted by build --demo.
var demoEntries = []skiplist.Entry{
	{Key: "a", Value: 10},
	{Key: "b", Value: 20},
	{Key: "c", Value: 15},
	{Key: "d", Value: 6},
}

type buildFlags struct {
	out    string
	demo   bool
	policy string
	seed   uint64
}

func newBuildCmd(a *app) *cobra.Command {
	var bf buildFlags
	cmd := &cobra.Command{
		Use:   "build [KEY=VALUE...]",
		Short: "Create a skip list from the given entries and save it.",
		Long: "Create a skip list from the given entries and save it. Without --out a new list identity is " +
			"allocated and the storage path is printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := parseEntries(args)
			if err != nil {
				return err
			}
			if bf.demo {
				entries = slices.Concat(demoEntries, entries)
			}

			policy, err := bf.levelPolicy()
			if err != nil {
				return err
			}
			l, err := skiplist.New(append(a.listOptions(), skiplist.WithLevelPolicy(policy))...)
			if err != nil {
				return err
			}
			if err = insertAll(l, entries); err != nil {
				return err
			}

			path := bf.out
			if path == "" {
				_, path, err = a.lists.Create(cmd.Context(), l)
			} else {
				err = a.lists.Save(cmd.Context(), path, l)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&bf.out, "out", "", "storage path to save the list to")
	f.BoolVar(&bf.demo, "demo", false, "start with the entries a=10 b=20 c=15 d=6")
	f.StringVar(&bf.policy, "policy", "geometric", "level policy, geometric or parity")
	f.Uint64Var(&bf.seed, "seed", 0, "seed for the level policy, 0 seeds randomly")
	return cmd
}

func (bf buildFlags) levelPolicy() (skiplist.LevelPolicy, error) {
	var r *rand.Rand
	if bf.seed != 0 {
		r = rand.New(rand.NewPCG(bf.seed, bf.seed))
	}
	switch bf.policy {
	case "geometric":
		return skiplist.GeometricPolicy{Rand: r}, nil
	case "parity":
		return skiplist.ParityPolicy{Rand: r}, nil
	default:
		return nil, fmt.Errorf("unknown level policy %q", bf.policy)
	}
}
