package service

import "errors"

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("export not found")
	ErrExportsDisabled = errors.New("exports are disabled")
	ErrPresign         = errors.New("presign download url")
)
