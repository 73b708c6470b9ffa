package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions lists extensions picked up when walking a directory.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".ico":  true,
}

// ExpandPaths turns command-line arguments into a list of source files.
// Files are kept as given, in order; directories are walked in lexical
// order for files with a known image extension, skipping hidden
// directories. Arguments that cannot be stat'ed are passed through so
// they are reported as per-item decode failures.
func ExpandPaths(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != arg && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if imageExtensions[strings.ToLower(filepath.Ext(path))] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}
