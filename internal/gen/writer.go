package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory, creating it
// if needed. Callers must only reach this point with a fully generated file
// set: the no-partial-output rule is enforced by generating everything before
// writing anything.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// WriteDebugUnformatted writes source that failed formatting to a sidecar
// file next to the intended output. Best-effort: it must never make a failed
// generation fail harder.
func WriteDebugUnformatted(outputDir, filename string, content []byte) error {
	if outputDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return err
	}
	// Keep it a .go suffix-adjacent name so editors highlight it without the
	// build picking it up.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted"

	return os.WriteFile(filepath.Join(outputDir, debugName), content, filePerm)
}
