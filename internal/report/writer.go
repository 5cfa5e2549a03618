package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/components"
)

// ErrRender is returned when the report cannot be rendered or written.
// It is fatal to the run; callers do not retry.
var ErrRender = errors.New("cannot write report")

// WriteHTML renders the page and writes it to path in one atomic step:
// the document is rendered to memory first, then written to a temp file
// in the target directory and renamed into place, so a failure never
// leaves a partial report behind.
func WriteHTML(page *components.Page, path string) error {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("%w: render: %v", ErrRender, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create output directory %q: %v", ErrRender, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*.html")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %q: %v", ErrRender, dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %q: %v", ErrRender, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %v", ErrRender, tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: chmod %q: %v", ErrRender, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename to %q: %v", ErrRender, path, err)
	}
	return nil
}
