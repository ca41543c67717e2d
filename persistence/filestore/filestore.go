// Package filestore is a YAML-backed stand-in for the EEPROM the flight
// computer core persists settings to: each persistence.ID's raw 4-byte cell
// is kept in a file, loaded at startup and rewritten whenever the
// controller's debounce timer flushes a pending change.
package filestore

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skyvario/varioc/persistence"
)

// entry is the on-disk shape of one stored item: present-bit plus the raw
// 4-byte cell, which yaml writes as a sequence of four integers.
type entry struct {
	Present bool    `yaml:"present"`
	Data    [4]byte `yaml:"data"`
}

// Store is a file-backed map of persistence.ID to persistence.Item.
type Store struct {
	path    string
	entries map[persistence.ID]entry
}

// Open loads path if it exists, or starts empty if it does not (first boot).
func Open(path string) (*Store, error) {
	s := &Store{path: path, entries: map[persistence.ID]entry{}}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	raw := map[uint16]entry{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	for id, e := range raw {
		s.entries[persistence.ID(id)] = e
	}
	return s, nil
}

// All returns every present item, for applying at startup via
// controller.RestoreItem.
func (s *Store) All() []persistence.Item {
	items := make([]persistence.Item, 0, len(s.entries))
	for id, e := range s.entries {
		if !e.Present {
			continue
		}
		items = append(items, persistence.Item{ID: id, DatBit: true, Data: e.Data})
	}
	return items
}

// Put stages one item's value in memory without writing to disk yet.
func (s *Store) Put(it persistence.Item) {
	s.entries[it.ID] = entry{Present: it.DatBit, Data: it.Data}
}

// Flush writes the whole store to disk, replacing its previous contents.
func (s *Store) Flush() error {
	raw := make(map[uint16]entry, len(s.entries))
	for id, e := range s.entries {
		raw[uint16(id)] = e
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}
