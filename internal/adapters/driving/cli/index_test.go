package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexCmd_Use(t *testing.T) {
	assert.Equal(t, "index [source-id]", indexCmd.Use)
}

func TestIndexCmd_IndexesAllSources(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexing all sources...")
	assert.Contains(t, buf.String(), "Indexed")
	assert.Contains(t, buf.String(), "module")
	assert.Contains(t, buf.String(), "help")
}

func TestIndexCmd_IndexesSingleSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "help"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexing source: help")
}

func TestIndexCmd_UnknownSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"index", "no-such-source"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "index failed")
}
