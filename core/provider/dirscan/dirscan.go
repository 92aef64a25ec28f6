// Package dirscan provides a font enumeration provider that walks font
// directories on the local filesystem and parses the metadata of every font
// file it finds.
package dirscan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"font-catalog/core/catalog"
	"font-catalog/core/fontfile"

	"go.uber.org/zap"
)

// Provider enumerates fonts from a set of directories.
type Provider struct {
	dirs   []string
	logger *zap.Logger
}

// New creates a directory-scanning provider. An empty dirs list falls back
// to the platform's default font directories.
func New(dirs []string, logger *zap.Logger) *Provider {
	if len(dirs) == 0 {
		dirs = DefaultDirs()
	}
	return &Provider{dirs: dirs, logger: logger}
}

// DefaultDirs returns the conventional font directories of the host platform.
func DefaultDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return []string{`C:\Windows\Fonts`}
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		}
	}
}

// Enumerate implements catalog.Provider. Families appear in the order their
// first face was encountered; faces keep file-walk order. Unreadable or
// unparsable files are skipped, not fatal: a single corrupt font must not
// hide the rest of the catalog.
func (p *Provider) Enumerate(ctx context.Context) ([]catalog.FamilyInfo, error) {
	var (
		order   []string
		grouped = make(map[string][]catalog.FaceInfo)
	)

	for _, dir := range p.dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// A missing or unreadable directory is an empty one.
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if d.IsDir() || !fontfile.IsFontFile(path) {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				p.logger.Warn("Skipping unreadable font file", zap.String("path", path), zap.Error(err))
				return nil
			}
			family, face, err := fontfile.Parse(data, path)
			if err != nil {
				p.logger.Debug("Skipping unparsable font file", zap.String("path", path), zap.Error(err))
				return nil
			}

			if _, seen := grouped[family]; !seen {
				order = append(order, family)
			}
			grouped[family] = append(grouped[family], face)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	families := make([]catalog.FamilyInfo, 0, len(order))
	for _, name := range order {
		families = append(families, catalog.FamilyInfo{Name: name, Faces: grouped[name]})
	}
	return families, nil
}
