package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaomi388/result-management/pkg/config"
	"github.com/xiaomi388/result-management/pkg/form"
	"github.com/xiaomi388/result-management/pkg/types"
)

func TestOpenUsesConfigAndDataPath(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	logPath := filepath.Join(dir, "app.log")
	require.NoError(t, config.Dump(cfgPath, &config.Config{
		Storage:  config.StorageConfig{Backend: "json"},
		Classes:  []string{"9", "10"},
		LogLevel: "debug",
		LogFile:  logPath,
	}))

	config.ConfigPath = cfgPath
	DataPath = filepath.Join(dir, "roster.json")
	t.Cleanup(func() { config.ConfigPath, DataPath = "", "" })

	a, err := Open(true)
	require.NoError(t, err)

	assert.Equal(t, []types.ClassID{"9", "10"}, a.Controller.Classes())

	f := form.Fields{StudentID: "x", Name: "X", RollNo: "1", Section: "A"}
	f.SelectClass("10")
	_, err = a.Controller.SubmitAddOrUpdate(&f)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	_, err = os.Stat(DataPath)
	assert.NoError(t, err)
	logData, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "student saved")
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  backend: csv\n"), 0644))

	config.ConfigPath = cfgPath
	t.Cleanup(func() { config.ConfigPath = "" })

	_, err := Open(false)
	assert.Error(t, err)
}
