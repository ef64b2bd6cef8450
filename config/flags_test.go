package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mincut-supertree/supertree/config"
)

func TestParseArgsDefaultsAlgorithmToROD1(t *testing.T) {
	cfg, err := config.ParseArgs([]string{"trees.nwk"})
	require.NoError(t, err)
	require.Equal(t, "trees.nwk", cfg.InputPath)
	require.Equal(t, config.ROD1, cfg.Algorithm)
	require.False(t, cfg.HasClusterK)
}

func TestParseArgsShortAndLongFlagsAgree(t *testing.T) {
	short, err := config.ParseArgs([]string{"-a", "0", "-w", "-l", "trees.nwk"})
	require.NoError(t, err)

	long, err := config.ParseArgs([]string{"--algorithm", "0", "--weights", "--labels", "trees.nwk"})
	require.NoError(t, err)

	require.Equal(t, short.Algorithm, long.Algorithm)
	require.Equal(t, short.RespectWeights, long.RespectWeights)
	require.Equal(t, short.LeafLabels, long.LeafLabels)
}

func TestParseArgsRejectsMissingPositional(t *testing.T) {
	_, err := config.ParseArgs([]string{"-w"})
	require.ErrorIs(t, err, config.ErrUsage)
}

func TestParseArgsRejectsBadAlgorithm(t *testing.T) {
	_, err := config.ParseArgs([]string{"-a", "7", "trees.nwk"})
	require.ErrorIs(t, err, config.ErrUsage)
}

func TestParseArgsVersionSkipsPositionalRequirement(t *testing.T) {
	cfg, err := config.ParseArgs([]string{"-v"})
	require.NoError(t, err)
	require.True(t, cfg.ShowVersion)
}

func TestParseArgsClusterModeRecordsThreshold(t *testing.T) {
	cfg, err := config.ParseArgs([]string{"-c", "3", "trees.nwk"})
	require.NoError(t, err)
	require.True(t, cfg.HasClusterK)
	require.Equal(t, 3, cfg.ClusterK)
}
