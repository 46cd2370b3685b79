package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eak1mov/go-libmaps/mapdata"
)

var errInvalidPattern = errors.New("invalid output pattern")

// isPattern reports whether path names one output file per room.
func isPattern(path string) bool {
	return strings.Contains(path, "{room}")
}

func validatePattern(pattern string) error {
	for _, p := range []string{"{room}", "{layer}"} {
		if strings.Count(pattern, p) > 1 {
			return fmt.Errorf("%w: placeholder %v used twice", errInvalidPattern, p)
		}
	}
	if strings.Contains(pattern, "{layer}") && !isPattern(pattern) {
		return fmt.Errorf("%w: {layer} without {room}", errInvalidPattern)
	}
	return nil
}

func formatPattern(pattern, room string, layer mapdata.Layer) string {
	result := pattern
	result = strings.ReplaceAll(result, "{room}", strings.ReplaceAll(room, "/", "_"))
	result = strings.ReplaceAll(result, "{layer}", layer.String())
	return result
}
