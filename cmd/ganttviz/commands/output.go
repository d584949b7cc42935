package commands

import (
	"fmt"
	"os"
)

type errOutputUnavailable struct {
	Issue error
	Path  string
}

func (e errOutputUnavailable) Error() string {
	return fmt.Sprintf("output %q unavailable: %v", e.Path, e.Issue)
}

func (e errOutputUnavailable) Unwrap() error {
	return e.Issue
}

// outputFile creates its file on the first write only.
// A run failing before the renderer writes leaves the previous chart untouched.
type outputFile struct {
	file *os.File
	path string
}

func newOutputFile(path string) *outputFile {
	return &outputFile{
		path: path,
	}
}

func (o *outputFile) Write(content []byte) (int, error) {
	if o.file == nil {
		f, errCreate := os.Create(o.path)
		if errCreate != nil {
			return 0,
				errOutputUnavailable{
					Path:  o.path,
					Issue: errCreate,
				}
		}

		o.file = f
	}

	return o.file.Write(content)
}

func (o *outputFile) Close() error {
	if o.file == nil {
		return nil
	}

	return o.file.Close()
}
