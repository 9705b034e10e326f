package buyflow

import "errors"

var (
	ErrInvalidDeclaration  = errors.New("invalid buyflow declaration")
	ErrUndefinedTransition = errors.New("undefined transition")

	ErrIllegalTransition = errors.New("illegal transition")
	ErrInvalidRole       = errors.New("invalid role")
	ErrTransitionFailed  = errors.New("transition failed")
)
