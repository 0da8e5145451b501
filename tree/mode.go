package tree

//go:generate go tool stringer -type=Mode -output=mode_string.go

// Mode selects the missing-key policy for SetEntry.
type Mode int

const (
	// ModeModerate skips a write whose final key is absent and reports the
	// miss through SetEntry's boolean result.
	ModeModerate Mode = iota

	// ModeStrict fails a write whose final key is absent with a
	// *MissingKeyError.
	ModeStrict
)
