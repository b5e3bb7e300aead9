package toolchain

import "errors"

var (
	ErrFormat = errors.New("source formatting failed")
	ErrBuild  = errors.New("build failed")
)
