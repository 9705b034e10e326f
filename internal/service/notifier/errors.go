package notifier

import "errors"

var (
	ErrSettingsRead      = errors.New("notifier settings read")
	ErrTimestampNotSaved = errors.New("notification timestamp not saved")
)
