package docs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"dotdocs/internal/model"
)

// Locate globs the fixed documentation patterns in dir and returns the
// matches in display order: priority table rank first, then filename.
// Files matched by more than one pattern appear more than once; the
// duplication is long-standing observable behavior and is kept as-is.
func Locate(dir string) []model.DocFile {
	var files []model.DocFile
	for _, pattern := range model.DocPatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			// Only possible with a malformed pattern; ours are fixed.
			continue
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			name := filepath.Base(match)
			files = append(files, model.DocFile{
				Path: match,
				Name: name,
				Rank: Rank(name),
			})
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Rank != files[j].Rank {
			return files[i].Rank < files[j].Rank
		}
		return files[i].Name < files[j].Name
	})
	log.Debug("located documentation files", "dir", dir, "count", len(files))
	return files
}

// Rank maps a file name to its index in the priority table. The stem is
// compared case-insensitively with the extension stripped. Names outside
// the table rank one past its end so they sort after ranked files.
func Rank(name string) int {
	stem := strings.ToUpper(strings.TrimSuffix(name, filepath.Ext(name)))
	for i, p := range model.PriorityOrder {
		if stem == p {
			return i
		}
	}
	return model.UnrankedIndex
}
