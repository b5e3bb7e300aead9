package launch

import "errors"

var (
	ErrWorkspace = errors.New("workspace resolution failed")
	ErrStart     = errors.New("daemon start failed")
)
