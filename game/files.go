package game

import (
	"os"

	"github.com/pkg/errors"
)

// ReadFile returns the whole content of an RLE file
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "[ReadFile] failed to read file: %+v", path)
	}
	return string(data), nil
}

// WriteFile replaces path with content
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to write file: %+v", path)
	}
	return nil
}
