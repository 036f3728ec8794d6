package command

import "errors"

var (
	ErrMalformedLine = errors.New("malformed command line")
)
