package main

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-skiplog/skiplist"
	"github.com/forestrie/go-skiplog/storage"
	"github.com/spf13/cobra"
)

const serviceName = "skiplog"

// app carries the persistent flags and the store they select.
type app struct {
	logLevel  string
	container string
	root      string
	maxLevel  int

	log   logger.Logger
	lists *storage.ListStore
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Work with skip list files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.logLevel, "log-level", "INFO", "log level, NOOP disables logging")
	f.StringVar(&a.container, "container", "",
		"blob container on the storage emulator configured by the environment. Paths are blob names. "+
			"When empty, paths are files relative to --root")
	f.StringVar(&a.root, "root", "", "directory local paths are relative to")
	f.IntVar(&a.maxLevel, "max-level", skiplist.DefaultMaxLevel, "level ceiling of built and loaded lists")

	root.AddCommand(
		newBuildCmd(a),
		newDumpCmd(a),
		newSearchCmd(a),
		newInsertCmd(a),
		newRemoveCmd(a),
	)
	return root
}

func (a *app) setup() error {
	logger.New(a.logLevel)
	a.log = logger.Sugar.WithServiceName(serviceName)

	var objects storage.ObjectReaderWriter
	if a.container != "" {
		storer, err := azblob.NewDev(azblob.NewDevConfigFromEnv(), a.container)
		if err != nil {
			return fmt.Errorf("blob container %s: %w", a.container, err)
		}
		objects = storage.NewBlobStore(a.log, storer)
	} else {
		objects = storage.NewFileStore(a.root)
	}

	var err error
	a.lists, err = storage.NewListStore(a.log, objects,
		storage.WithCacheSize(0),
		storage.WithListOptions(a.listOptions()...))
	return err
}

func (a *app) listOptions() []skiplist.Option {
	return []skiplist.Option{skiplist.WithMaxLevel(a.maxLevel)}
}
