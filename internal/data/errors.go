package data

import "errors"

// ErrUnrecognizedStat reports a stat name in game data that no alias
// resolves. Raised at load time and never swallowed: it means the content
// itself is misconfigured.
var ErrUnrecognizedStat = errors.New("unrecognized stat name")
