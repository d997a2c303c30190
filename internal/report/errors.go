package report

import (
	"fmt"
	"strings"
)

// RowError is a failure to compile one expense row, tagged with its
// 1-based row number.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// CompileError carries every row-level error from a compile pass. Rows are
// validated independently so one bad row cannot hide errors in the others;
// the caller decides whether to abort or continue in inspection-only mode.
type CompileError struct {
	RowErrors []*RowError
}

func (e *CompileError) Error() string {
	msgs := make([]string, len(e.RowErrors))
	for i, re := range e.RowErrors {
		msgs[i] = re.Error()
	}
	return fmt.Sprintf("%d row error(s): %s", len(e.RowErrors), strings.Join(msgs, "; "))
}
