// Package lot holds the user-drawn parking lot: wall segments plus the undo
// and redo stacks that shadow them.
package lot

// Layout is the active wall list together with its history and redo stacks.
//
// history always mirrors walls between calls; redo holds the walls removed by
// Undo, most recent last. Any Append clears redo.
type Layout struct {
	walls   []Wall
	history []Wall
	redo    []Wall
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// Append adds walls in order and clears the redo stack.
func (l *Layout) Append(walls ...Wall) {
	if len(walls) == 0 {
		return
	}
	l.walls = append(l.walls, walls...)
	l.history = append(l.history, walls...)
	l.redo = nil
}

// Undo removes the most recent wall and pushes it onto the redo stack.
func (l *Layout) Undo() (Wall, bool) {
	if len(l.walls) == 0 {
		return Wall{}, false
	}
	last := l.walls[len(l.walls)-1]
	l.walls = l.walls[:len(l.walls)-1]
	l.history = l.history[:len(l.history)-1]
	l.redo = append(l.redo, last)
	return last, true
}

// Redo restores the most recently undone wall.
func (l *Layout) Redo() (Wall, bool) {
	if len(l.redo) == 0 {
		return Wall{}, false
	}
	next := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.walls = append(l.walls, next)
	l.history = append(l.history, next)
	return next, true
}

// Clear drops every wall and both stacks.
func (l *Layout) Clear() {
	l.walls = nil
	l.history = nil
	l.redo = nil
}

// Replace swaps in a new wall list wholesale; history starts over from it
// and the redo stack is emptied.
func (l *Layout) Replace(walls []Wall) {
	l.walls = clone(walls)
	l.history = clone(walls)
	l.redo = nil
}

// Restore installs all three lists as-is, as read back from a snapshot.
func (l *Layout) Restore(walls, history, redo []Wall) {
	l.walls = clone(walls)
	l.history = clone(history)
	l.redo = clone(redo)
}

// Walls returns a copy of the active walls.
func (l *Layout) Walls() []Wall { return clone(l.walls) }

// History returns a copy of the undo history.
func (l *Layout) History() []Wall { return clone(l.history) }

// RedoStack returns a copy of the redo stack, most recent undo last.
func (l *Layout) RedoStack() []Wall { return clone(l.redo) }

// Len returns the number of active walls.
func (l *Layout) Len() int { return len(l.walls) }

// CanRedo reports whether Redo would restore a wall.
func (l *Layout) CanRedo() bool { return len(l.redo) > 0 }

// View exposes the active walls without copying. Callers must not modify it.
func (l *Layout) View() []Wall { return l.walls }

func clone(walls []Wall) []Wall {
	if len(walls) == 0 {
		return nil
	}
	out := make([]Wall, len(walls))
	copy(out, walls)
	return out
}
