package importfix

import (
	"fmt"
	"io"
	"os"
)

// Reporter emits progress lines for the operator.
type Reporter interface {
	Printf(format string, arguments ...any)
}

type writerReporter struct {
	writer io.Writer
}

// NewWriterReporter constructs a Reporter that writes to the provided io.Writer, defaulting to standard output.
func NewWriterReporter(writer io.Writer) Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return writerReporter{writer: writer}
}

func (reporter writerReporter) Printf(format string, arguments ...any) {
	fmt.Fprintf(reporter.writer, format, arguments...)
}
