package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"parking-sim/internal/logging"
)

// Store keeps scenarios in numbered JSON files under a directory. Slots are
// numbered from 1.
type Store struct {
	dir   string
	slots int
	log   *logging.Logger

	// Decoded slots for previews; cleared for a slot whenever it is written.
	peeked map[int]Snapshot
}

// NewStore returns a store with slots 1..slots in dir. The directory is
// created on first save.
func NewStore(dir string, slots int, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{
		dir:    dir,
		slots:  slots,
		log:    log.With("component", "save"),
		peeked: make(map[int]Snapshot),
	}
}

// Slots returns the number of slots.
func (s *Store) Slots() int { return s.slots }

// Path returns the file backing slot.
func (s *Store) Path(slot int) string {
	return filepath.Join(s.dir, fmt.Sprintf("parking_lot_save_%d.json", slot))
}

func (s *Store) checkSlot(slot int) error {
	if slot < 1 || slot > s.slots {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	return nil
}

// Occupied reports whether slot already holds a file.
func (s *Store) Occupied(slot int) (bool, error) {
	if err := s.checkSlot(slot); err != nil {
		return false, err
	}
	_, err := os.Stat(s.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat slot %d: %w", slot, err)
	}
	return true, nil
}

// Save writes snap into slot. Unless force is set, an occupied slot is left
// untouched and ErrSlotOccupied is returned so the caller can confirm.
func (s *Store) Save(slot int, snap Snapshot, force bool) error {
	occupied, err := s.Occupied(slot)
	if err != nil {
		return err
	}
	if occupied && !force {
		return fmt.Errorf("slot %d: %w", slot, ErrSlotOccupied)
	}

	data, err := Encode(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".parking_lot_save_*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write slot %d: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write slot %d: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(slot)); err != nil {
		return fmt.Errorf("failed to write slot %d: %w", slot, err)
	}

	delete(s.peeked, slot)
	s.log.Info("scenario saved", "slot", slot, "walls", len(snap.Walls), "overwrite", occupied)
	return nil
}

// Load reads and validates slot. An absent file yields ErrSlotEmpty.
func (s *Store) Load(slot int) (Snapshot, error) {
	if err := s.checkSlot(slot); err != nil {
		return Snapshot{}, err
	}
	data, err := os.ReadFile(s.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, fmt.Errorf("slot %d: %w", slot, ErrSlotEmpty)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read slot %d: %w", slot, err)
	}

	snap, err := Decode(data)
	if err != nil {
		s.log.Warn("rejected snapshot", "slot", slot, "error", err.Error())
		return Snapshot{}, fmt.Errorf("slot %d: %w", slot, err)
	}
	return snap, nil
}

// Peek is Load with a per-slot cache, for hover previews drawn every frame.
func (s *Store) Peek(slot int) (Snapshot, error) {
	if snap, ok := s.peeked[slot]; ok {
		return snap, nil
	}
	snap, err := s.Load(slot)
	if err != nil {
		return Snapshot{}, err
	}
	s.peeked[slot] = snap
	return snap, nil
}
