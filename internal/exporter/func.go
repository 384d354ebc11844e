package exporter

import (
	"fmt"
	"os"
)

// mkdir creates pth and its parents unless it already exists.
func mkdir(pth string) error {
	if _, err := os.Stat(pth); os.IsNotExist(err) {
		if err = os.MkdirAll(pth, os.ModePerm); err != nil {
			return fmt.Errorf("os.MkdirAll: %w", err)
		}
	}

	return nil
}
