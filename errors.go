package urlstrip

// Error is a URL stripping failure carried as the Err payload of a
// StripResult. Immutable once constructed.
type Error struct {
	msg string
}

// NewError builds an Error from a human-readable message.
func NewError(msg string) Error {
	return Error{msg: msg}
}

func (e Error) Error() string { return e.msg }
