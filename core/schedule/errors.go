package schedule

import "errors"

// ErrFileAccess reports a schedule file that is missing or unreadable.
var ErrFileAccess = errors.New("schedule file access")

// ErrMalformedInput reports content that is not valid JSON.
var ErrMalformedInput = errors.New("malformed schedule input")

// ErrSchemaValidation reports valid JSON that does not match the solver
// output schema: missing or mistyped required fields, or unparsable
// timestamps.
var ErrSchemaValidation = errors.New("schedule schema validation")
