package roster

import "errors"

// Sentinel error kinds for schema and roster operations. Callers match
// these with errors.Is.
var (
	// ErrSchemaMismatch reports a slot-count map whose key set does not
	// exactly equal the layout's canonical position set.
	ErrSchemaMismatch = errors.New("slot counts do not match position set")

	// ErrNegativeSlotCount reports a negative slot allotment.
	ErrNegativeSlotCount = errors.New("negative slot count")

	// ErrUnknownPosition reports a position code outside the schema.
	ErrUnknownPosition = errors.New("unknown position")

	// ErrInvalidPlayer reports a player whose listed position is not a
	// canonical code of the active schema.
	ErrInvalidPlayer = errors.New("invalid player position")

	// ErrIllegalMove reports a move to a slot the player is not eligible for.
	ErrIllegalMove = errors.New("player not eligible for destination slot")

	// ErrMissingReplacement reports a move into a full slot group without a
	// displacement candidate.
	ErrMissingReplacement = errors.New("destination full and no replacement given")

	// ErrPlayerNotFound reports a drop or move referencing a player absent
	// from the natural, flex, and bench slot groups.
	ErrPlayerNotFound = errors.New("player not on roster")
)
