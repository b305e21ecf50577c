// Package walker implements the File Walker (C1): a recursive, vendor-dir
// skipping traversal that yields FileRecords for every file the caller's
// include/exclude globs and language set accept.
package walker

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/engineerr"
	"github.com/hardgate/scanengine/internal/model"
)

// skipDirs is the fixed set of directory names the walker never descends
// into: version-control metadata, dependency caches, build outputs,
// virtualenv directories, and IDE directories.
var skipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"vendor":       true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"bin":          true,
	"obj":          true,
	".idea":        true,
	".vscode":      true,
	".mypy_cache":  true,
	".pytest_cache": true,
}

// File pairs a FileRecord with its on-disk content, read once at walk time.
type File struct {
	Record  model.FileRecord
	Content string
}

// Skip records a file the walker declined to analyze and why.
type Skip struct {
	Path   string
	Detail string
}

// Result is the full output of one walk: the accepted files and the
// skipped-file details, both unordered.
type Result struct {
	Files []File
	Skips []Skip
}

// Walk traverses settings.RootPath and returns every FileRecord accepted by
// the language set and include/exclude globs. A missing root path is a
// fatal, caller-facing error; an unreadable individual file is downgraded to
// a Skip entry and does not fail the walk.
func Walk(settings config.Settings) (*Result, error) {
	root := settings.RootPath
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: root path %q: %v", engineerr.ErrRepositoryUnavailable, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: root path %q is not a directory", engineerr.ErrInvalidInput, root)
	}

	res := &Result{}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			res.Skips = append(res.Skips, Skip{Path: path, Detail: err.Error()})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 && !settings.FollowSymlinks {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if matchesAny(rel, settings.ExcludeGlobs) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			res.Skips = append(res.Skips, Skip{Path: rel, Detail: err.Error()})
			return nil
		}

		if settings.MaxFileSize > 0 && fi.Size() > settings.MaxFileSize {
			res.Skips = append(res.Skips, Skip{Path: rel, Detail: "exceeds max_file_size"})
			return nil
		}

		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		lang, known := model.LanguageByExtension(ext)

		included := matchesAny(rel, settings.IncludeGlobs)
		if !known && !included {
			return nil
		}
		if len(settings.Languages) > 0 && known && !containsLang(settings.Languages, lang) && !included {
			return nil
		}

		content, err := readLossy(path)
		if err != nil {
			res.Skips = append(res.Skips, Skip{Path: rel, Detail: err.Error()})
			return nil
		}

		res.Files = append(res.Files, File{
			Record: model.FileRecord{
				Path:      rel,
				Language:  lang,
				SizeBytes: fi.Size(),
				Lines:     countLines(content),
			},
			Content: content,
		})
		return nil
	}

	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, fmt.Errorf("%w: %v", engineerr.ErrFileReadError, err)
	}

	return res, nil
}

func matchesAny(rel string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

func containsLang(langs []model.Language, lang model.Language) bool {
	for _, l := range langs {
		if l == lang {
			return true
		}
	}
	return false
}

func readLossy(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	return strings.ToValidUTF8(string(raw), "�"), nil
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
	}
	return n
}
