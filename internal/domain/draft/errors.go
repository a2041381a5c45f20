package draft

import "errors"

// Sentinel error kinds for draft sequencing. Callers match these with
// errors.Is.
var (
	// ErrNoRosters reports construction without any participating roster.
	ErrNoRosters = errors.New("draft requires at least one roster")

	// ErrInvalidRounds reports a non-positive round count.
	ErrInvalidRounds = errors.New("round count must be positive")

	// ErrPickOutOfRange reports a pick number outside [1, rounds*teams].
	ErrPickOutOfRange = errors.New("pick number out of range")

	// ErrDraftComplete reports a push after every pick has been consumed.
	ErrDraftComplete = errors.New("draft complete")

	// ErrNothingToUndo reports a pop before any pick has been made.
	ErrNothingToUndo = errors.New("no picks to undo")

	// ErrNoOpenSlot reports a pushed player the owning roster could not
	// place in any eligible slot.
	ErrNoOpenSlot = errors.New("no open roster slot for player")

	// ErrInconsistentState reports a recorded pick whose player could not
	// be dropped back off the owning roster during undo.
	ErrInconsistentState = errors.New("draft results inconsistent with roster")
)
