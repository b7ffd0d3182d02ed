package settings

import "errors"

var (
	ErrInvalidSettings = errors.New("settings.repository: invalid availability settings")
)
