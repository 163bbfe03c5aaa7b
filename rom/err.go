package rom

// ErrFormatInvalid is returned for an unknown output format.
type ErrFormatInvalid Format

func (err ErrFormatInvalid) Error() string {
	return f("invalid output format %v", Format(err).String())
}
