package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KimNorgaard/htmlisp"
)

// SourceExt is the file extension of HTMLisp sources.
const SourceExt = ".htmlisp"

// Options controls how a source file is compiled.
type Options struct {
	Pretty       bool
	ParseOptions []htmlisp.Option
}

// CompileFile reads the HTMLisp document at inPath and writes its HTML
// rendering to outPath. Missing parent directories of outPath are created
// and an existing file is overwritten.
func CompileFile(inPath, outPath string, opts Options) error {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	node, err := htmlisp.Parse(string(src), opts.ParseOptions...)
	if err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := htmlisp.Render(f, node, opts.Pretty); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write to output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write to output file: %w", err)
	}
	return nil
}

// OutputPath maps a source file inside watchDir to its HTML file under
// outDir, keeping the directory structure relative to watchDir. It also
// returns the source path relative to watchDir.
func OutputPath(watchDir, changed, outDir string) (out, rel string, err error) {
	absDir, err := canonical(watchDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input file: %w", err)
	}
	absChanged, err := canonical(changed)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input file: %w", err)
	}

	rel, err = filepath.Rel(absDir, absChanged)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("'%s' is not inside '%s'", changed, watchDir)
	}

	out = filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html")
	return out, rel, nil
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
