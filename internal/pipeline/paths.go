package pipeline

import (
	"path/filepath"

	"github.com/matsen/citefix/internal/config"
)

// Paths are the files one run reads and writes.
type Paths struct {
	Markdown string `json:"markdown"`
	PDF      string `json:"pdf"`
	Output   string `json:"output"`
}

// ResolvePaths maps positional arguments (markdown, optional PDF, optional
// output) to paths. The PDF defaults to cfg.PDFName next to the markdown and
// the output to the markdown's name with cfg.OutputPrefix, in the same
// directory.
func ResolvePaths(args []string, cfg *config.Config) (Paths, error) {
	if len(args) == 0 || args[0] == "" {
		return Paths{}, ErrUsage
	}
	if cfg == nil {
		cfg = config.Default()
	}

	md := args[0]
	dir := filepath.Dir(md)
	p := Paths{
		Markdown: md,
		PDF:      filepath.Join(dir, cfg.PDFName),
		Output:   filepath.Join(dir, cfg.OutputPrefix+filepath.Base(md)),
	}

	if len(args) >= 2 && args[1] != "" {
		p.PDF = args[1]
	}
	if len(args) >= 3 && args[2] != "" {
		p.Output = args[2]
	}

	return p, nil
}
