package roster

import "fmt"

// FormatError reports a malformed roster record. Malformed input is rejected
// here, before it can reach the engine; the engine assumes validated rosters.
type FormatError struct {
	File string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v:%v: %v", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%v: %v", e.File, e.Msg)
}
