package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reglet-dev/colsim/internal/domain/entities"
	"github.com/reglet-dev/colsim/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInitOptions() InitOptions {
	return InitOptions{
		Name:          "stripper",
		Stages:        12,
		FeedPositions: []int{4, 8},
		Ratio:         0.4,
		Reflux:        1.2,
		Temperature:   110,
		Pressure:      2,
	}
}

func TestBuildDefinition(t *testing.T) {
	def, err := buildDefinition(validInitOptions())
	require.NoError(t, err)
	assert.Equal(t, config.CurrentDefinitionVersion, def.Version)
	assert.Equal(t, "stripper", def.Name)
	assert.Equal(t, []int{4, 8}, def.Column.FeedPositions)
}

func TestBuildDefinition_ReportsAllViolations(t *testing.T) {
	opts := validInitOptions()
	opts.Ratio = 0
	opts.Reflux = 0

	_, err := buildDefinition(opts)
	var verr *entities.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		"Distillate to feed ratio must be between 0 and 1",
		"Reflux ratio must be greater than 0",
	}, verr.Violations)

	opts = validInitOptions()
	opts.Name = ""
	_, err = buildDefinition(opts)
	assert.EqualError(t, err, "column name is required")
}

func TestSaveDefinition_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column.yaml")
	def, err := buildDefinition(validInitOptions())
	require.NoError(t, err)

	require.NoError(t, saveDefinition(def, path, false))
	err = saveDefinition(def, path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	def.Name = "renamed"
	require.NoError(t, saveDefinition(def, path, true))

	loaded, err := config.NewDefinitionLoader().LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "renamed", loaded.Name)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestParseIntList(t *testing.T) {
	got, err := parseIntList(" 4, 8 ,,12")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 12}, got)

	got, err = parseIntList("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseIntList("4, x")
	assert.EqualError(t, err, `invalid position "x"`)

	assert.Equal(t, "4, 8", joinIntList([]int{4, 8}))
	assert.Equal(t, "", formatIntField(0))
	assert.Equal(t, "0.25", formatFloatField(0.25))
}
