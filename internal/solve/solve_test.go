package solve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTerminationStatus_Optimal(t *testing.T) {
	require.Equal(t, StatusOptimal, terminationStatus(true, 2*time.Second, 10*time.Second))
}

func TestTerminationStatus_TimeLimitReached(t *testing.T) {
	require.Equal(t, StatusTimeLimit, terminationStatus(false, 10*time.Second, 10*time.Second))
}

func TestTerminationStatus_FeasibleWithNoTimeLimitSet(t *testing.T) {
	require.Equal(t, StatusFeasible, terminationStatus(false, 3*time.Second, 0))
}

func TestTerminationStatus_FeasibleBeforeTimeLimit(t *testing.T) {
	require.Equal(t, StatusFeasible, terminationStatus(false, 3*time.Second, 10*time.Second))
}
