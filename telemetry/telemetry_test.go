package telemetry_test

import (
	"encoding/json"
	"testing"

	"github.com/paradise-fi/rofivoxel/telemetry"
	"github.com/stretchr/testify/require"
)

func TestDisabledCountersAreNoOps(t *testing.T) {
	telemetry.Disable()
	telemetry.IncModules(5)
	telemetry.IncSuccessfulCuts()
	require.Nil(t, telemetry.Current())
}

func TestEnableAccumulatesAndMarshals(t *testing.T) {
	c := telemetry.Enable()
	defer telemetry.Disable()

	telemetry.IncModules(3)
	telemetry.IncSuccessfulCuts()
	telemetry.IncSuccessfulCuts()
	telemetry.IncFailedCuts()
	telemetry.IncDuplicateMoves()
	telemetry.IncCollidedMoves()
	telemetry.IncNewUniqueStates()
	telemetry.RecordBFSLayer(1)
	telemetry.RecordBFSLayer(4)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var got struct {
		Total struct {
			Modules         int64 `json:"modules"`
			SuccessfulCuts  int64 `json:"successful_cuts"`
			FailedCuts      int64 `json:"failed_cuts"`
			DuplicateMoves  int64 `json:"duplicate_moves"`
			CollidedMoves   int64 `json:"collided_moves"`
			NewUniqueStates int64 `json:"new_unique_states"`
		} `json:"total"`
		BFSLayers []int64 `json:"bfs_layers"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, int64(3), got.Total.Modules)
	require.Equal(t, int64(2), got.Total.SuccessfulCuts)
	require.Equal(t, int64(1), got.Total.FailedCuts)
	require.Equal(t, int64(1), got.Total.DuplicateMoves)
	require.Equal(t, int64(1), got.Total.CollidedMoves)
	require.Equal(t, int64(1), got.Total.NewUniqueStates)
	require.Equal(t, []int64{1, 4}, got.BFSLayers)
}

func TestMarshalJSONOmitsEmptyBFSLayers(t *testing.T) {
	c := telemetry.Enable()
	defer telemetry.Disable()

	data, err := json.Marshal(c)
	require.NoError(t, err)
	require.NotContains(t, string(data), "bfs_layers")
}
