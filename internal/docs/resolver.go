package docs

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// EnvDir is the environment variable that overrides directory resolution.
const EnvDir = "DOTFILES_DIR"

// Resolve determines which directory holds the documentation files.
// Resolution never fails: the current working directory is the final
// fallback and counts as success.
func Resolve() string {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()
	return ResolveFrom(os.Getenv(EnvDir), home, cwd)
}

// ResolveFrom applies the resolution order against explicit inputs:
//  1. envDir, if set and the directory exists
//  2. home/.dotfiles, if it exists and holds a README* file
//  3. home/.config/dotfiles, under the same condition
//  4. cwd, unconditionally
func ResolveFrom(envDir, home, cwd string) string {
	if envDir != "" && isDir(envDir) {
		log.Debug("resolved dotfiles dir from environment", "dir", envDir)
		return envDir
	}
	for _, candidate := range []string{
		filepath.Join(home, ".dotfiles"),
		filepath.Join(home, ".config", "dotfiles"),
	} {
		if home == "" {
			break
		}
		if isDir(candidate) && hasReadme(candidate) {
			log.Debug("resolved conventional dotfiles dir", "dir", candidate)
			return candidate
		}
	}
	log.Debug("falling back to current directory", "dir", cwd)
	return cwd
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// hasReadme reports whether the directory contains at least one README* file.
func hasReadme(dir string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, "README*"))
	return err == nil && len(matches) > 0
}
