package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/render"
)

// writeArtifact writes a rendered artifact atomically: the bytes land in a
// uniquely named temp file first, then rename into place, so a concurrent
// reader never sees a half-written SVG.
func writeArtifact(path string, artifact *render.Artifact) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".go2uml-%s.tmp", uuid.New().String()))

	if err := os.WriteFile(tmp, artifact.Data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
