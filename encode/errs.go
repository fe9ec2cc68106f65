package encode

import "errors"

var (
	ErrEncoding  = errors.New("encoding error")
	ErrRootValue = errors.New("root has a value")
)
