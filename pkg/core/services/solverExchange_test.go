package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/pkg/bridge"
	"github.com/jakechorley/juryplan/pkg/db"
)

func TestExportForSolver(t *testing.T) {
	store := seededStore()
	store.defs = append(store.defs, db.ConstraintDefinition{
		Code: "disabled_rule", Name: "Disabled", Kind: db.KindSoft, Enabled: false, Weight: 1,
	})

	period := bridge.Period{Start: when("2024-03-01 00:00"), End: when("2024-04-01 00:00")}
	data, err := ExportForSolver(context.Background(), store, zap.NewNop(), period, map[string]float64{"own_match": 2})
	require.NoError(t, err)

	var doc bridge.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, bridge.ExportVersion, doc.Version)
	assert.Equal(t, period, doc.Period)
	assert.Len(t, doc.Teams, 2)
	assert.Len(t, doc.Matches, 2)
	for _, c := range doc.Constraints {
		assert.NotEqual(t, "disabled_rule", c.Code)
	}
	assert.Equal(t, 2.0, doc.WeightMultipliers["own_match"])
}

func TestImportSolutionAppliesAtomically(t *testing.T) {
	store := seededStore()
	data := []byte(`{
		"assignments": [
			{"matchId": "m1", "teamId": "t1", "points": 15},
			{"matchId": "m2", "teamId": "t2", "points": 15}
		],
		"period": {"start": "2024-03-01T00:00:00Z", "end": "2024-04-01T00:00:00Z"},
		"optimizationScore": 97.5,
		"constraintsSatisfied": 12,
		"totalConstraints": 12,
		"solverTimeSeconds": 0.8
	}`)

	result, err := ImportSolution(context.Background(), store, zap.NewNop(), data)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Applied)
	assert.True(t, store.applyCalled)
	assert.Len(t, store.appliedAssignments, 2)
	assert.Equal(t, "m1", store.appliedAssignments[0].MatchID)
	assert.NotEmpty(t, store.appliedAssignments[0].ID)
	assert.Equal(t, 97.5, store.appliedRun.OptimizationScore)
	assert.Equal(t, when("2024-03-01 00:00").UTC(), store.appliedPeriodStart.UTC())
}

func TestImportSolutionRejectsMissingAssignments(t *testing.T) {
	store := seededStore()

	_, err := ImportSolution(context.Background(), store, zap.NewNop(), []byte(`{"optimizationScore": 1}`))
	assert.ErrorIs(t, err, bridge.ErrMissingAssignments)
	assert.False(t, store.applyCalled)
}
