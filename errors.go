package pressure

import "errors"

// Input validation errors. They are always returned wrapped with the
// offending valve or line, so test for them with errors.Is.
var (
	ErrEmptyName      = errors.New("pressure: valve has no name")
	ErrDuplicateValve = errors.New("pressure: duplicate valve")
	ErrNegativeRate   = errors.New("pressure: negative flow rate")
	ErrUnknownTunnel  = errors.New("pressure: tunnel leads to unknown valve")
	ErrSyntax         = errors.New("pressure: malformed valve line")
	ErrStartNotFound  = errors.New("pressure: start valve not found")
	ErrTooManyValves  = errors.New("pressure: too many valves with positive flow rate")
)

// Table construction errors.
var (
	ErrBudget        = errors.New("pressure: time budget must be at least one minute")
	ErrTableTooLarge = errors.New("pressure: table exceeds cell limit")
	ErrOverflow      = errors.New("pressure: total pressure may overflow int64")
	ErrOption        = errors.New("pressure: invalid option")
)
