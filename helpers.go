package gantt

import (
	"fmt"
	"io"
	"runtime"
)

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}

// Use as defer traceExit(w) where w may be nil.
func traceExit(w io.Writer) {
	if w == nil {
		return
	}

	pc, _, line, ok := runtime.Caller(1)
	if ok {
		fmt.Fprintf(
			w,
			"exiting function %s at line %d.\n",

			runtime.FuncForPC(pc).Name(),
			line,
		)
	}
}

func traceExitWMarker(w io.Writer, marker string) {
	if w == nil {
		return
	}

	pc, _, line, ok := runtime.Caller(1)
	if ok {
		fmt.Fprintf(
			w,
			"exiting function %s at line %d (marker: %s).\n",

			runtime.FuncForPC(pc).Name(),
			line,
			marker,
		)
	}
}
