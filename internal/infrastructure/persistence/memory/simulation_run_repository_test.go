package memory

import (
	"context"
	"testing"
	"time"

	"github.com/reglet-dev/colsim/internal/domain/entities"
	"github.com/reglet-dev/colsim/internal/domain/execution"
	"github.com/reglet-dev/colsim/internal/domain/lifecycle"
	"github.com/reglet-dev/colsim/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulatedColumn(t *testing.T) *lifecycle.Column[lifecycle.Simulated] {
	t.Helper()
	b := entities.NewColumnBuilder().
		SetStages(5).
		SetDistillateToFeedRatio(0.5).
		SetRefluxRatio(1.5).
		SetTemperature(90).
		SetPressure(1).
		AddFeedPosition(3)
	configured, err := lifecycle.Build(b)
	require.NoError(t, err)
	return lifecycle.Simulate(lifecycle.DeriveEquations(configured))
}

func TestSimulationRunRepository_SaveAndFind(t *testing.T) {
	repo := NewSimulationRunRepository()
	ctx := context.Background()

	run := execution.NewSimulationRun("debutanizer", time.Now(), simulatedColumn(t))

	require.NoError(t, repo.Save(ctx, run))

	found, err := repo.FindByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Name, found.Name)
	assert.Equal(t, run.ID, found.ID)

	_, err = repo.FindByID(ctx, values.NewRunID())
	assert.Error(t, err)
}

func TestSimulationRunRepository_SaveRejectsMissingID(t *testing.T) {
	repo := NewSimulationRunRepository()

	assert.Error(t, repo.Save(context.Background(), nil))
	assert.Error(t, repo.Save(context.Background(), &execution.SimulationRun{Name: "x"}))
}

func TestSimulationRunRepository_ReturnsIndependentColumns(t *testing.T) {
	repo := NewSimulationRunRepository()
	ctx := context.Background()

	run := execution.NewSimulationRun("debutanizer", time.Now(), simulatedColumn(t))
	require.NoError(t, repo.Save(ctx, run))

	found, err := repo.FindByID(ctx, run.ID)
	require.NoError(t, err)
	_, err = lifecycle.Reconfigure(found.Column, nil)
	require.NoError(t, err)
	assert.True(t, found.Column.Spent())

	again, err := repo.FindByID(ctx, run.ID)
	require.NoError(t, err)
	assert.False(t, again.Column.Spent())
	assert.Len(t, lifecycle.TemperatureProfile(again.Column), 5)
}

func TestSimulationRunRepository_FindByName(t *testing.T) {
	repo := NewSimulationRunRepository()
	ctx := context.Background()

	now := time.Now()
	r1 := execution.NewSimulationRun("column-a", now.Add(-3*time.Hour), simulatedColumn(t))
	r2 := execution.NewSimulationRun("column-a", now.Add(-2*time.Hour), simulatedColumn(t))
	r3 := execution.NewSimulationRun("column-a", now.Add(-1*time.Hour), simulatedColumn(t))
	r4 := execution.NewSimulationRun("column-b", now, simulatedColumn(t))

	for _, r := range []*execution.SimulationRun{r1, r2, r3, r4} {
		require.NoError(t, repo.Save(ctx, r))
	}

	results, err := repo.FindByName(ctx, "column-a", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, r3.ID, results[0].ID) // Newest first
	assert.Equal(t, r2.ID, results[1].ID)

	results, err = repo.FindByName(ctx, "column-a", 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	results, err = repo.FindByName(ctx, "missing", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
