package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// isImageFile checks if a file has a supported image extension
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	supported := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
		".tiff": true,
		".tif":  true,
		".bmp":  true,
	}
	return supported[ext]
}

// collectImagePaths expands directory arguments into the image files they
// contain. Other arguments are kept as given, even when they do not exist, so
// the upload reports them as failed instead of silently dropping them.
func collectImagePaths(args []string, recursive bool) ([]string, error) {
	var filePaths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			filePaths = append(filePaths, arg)
			continue
		}

		if recursive {
			err := filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isImageFile(d.Name()) {
					filePaths = append(filePaths, path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("cannot walk folder %s: %w", arg, err)
			}
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read folder %s: %w", arg, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isImageFile(entry.Name()) {
				filePaths = append(filePaths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return filePaths, nil
}
