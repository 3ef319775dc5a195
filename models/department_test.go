package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepartmentIsWildcard(t *testing.T) {
	require.True(t, Department(DepartmentAll).IsWildcard())
	require.False(t, Department("Engineering").IsWildcard())
	require.False(t, Department("").IsWildcard())
	// значение чувствительно к регистру
	require.False(t, Department("all").IsWildcard())
}
