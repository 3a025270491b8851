package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/result-management/pkg/types"
)

// WriteError reports a failed save. The in-memory roster still holds the
// change that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save students data to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// EncodeRoster renders the roster with two-space indentation, keys in
// insertion order and no HTML escaping.
func EncodeRoster(roster *types.Roster) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(roster); err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}
	return buf.Bytes(), nil
}

func DumpRoster(path string, roster *types.Roster) error {
	data, err := EncodeRoster(roster)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

// LoadRoster never fails: a missing file and a file that can not be read or
// parsed both yield an empty roster. The next save overwrites the bad file.
func LoadRoster(path string) *types.Roster {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return types.NewRoster()
	}
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("failed to read students file, starting fresh")
		return types.NewRoster()
	}

	roster := types.NewRoster()
	if err := json.Unmarshal(data, roster); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("students file is corrupted, starting fresh")
		return types.NewRoster()
	}

	return roster
}
