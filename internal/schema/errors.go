package schema

import "errors"

// ErrUnknownType is returned for type names outside Types.
var ErrUnknownType = errors.New("unknown schema type")
