package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forestrie/go-skiplog/skiplist"
)

func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseValues(args []string) ([]uint32, error) {
	values := make([]uint32, 0, len(args))
	for _, arg := range args {
		v, err := parseValue(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// parseEntries parses KEY=VALUE arguments. The value is split at the last
// '=' so keys may contain one.
func parseEntries(args []string) ([]skiplist.Entry, error) {
	entries := make([]skiplist.Entry, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndexByte(arg, '=')
		if i <= 0 {
			return nil, fmt.Errorf("entry %q: want KEY=VALUE", arg)
		}
		v, err := parseValue(arg[i+1:])
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", arg, err)
		}
		entries = append(entries, skiplist.Entry{Key: arg[:i], Value: v})
	}
	return entries, nil
}

func insertAll(l *skiplist.List, entries []skiplist.Entry) error {
	for _, e := range entries {
		if err := l.Insert(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}
