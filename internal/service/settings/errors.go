package settings

import "errors"

var (
	ErrUnknownSetting      = errors.New("unknown setting")
	ErrInvalidSettingValue = errors.New("invalid setting value")
	ErrSettingNotFound     = errors.New("setting not found")
)
