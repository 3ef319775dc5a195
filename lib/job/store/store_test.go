package jobstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	require.Equal(t, 1, ParseNumber("JOB001"))
	require.Equal(t, 37, ParseNumber("JOB037"))
	require.Equal(t, 104, ParseNumber("JOB104"))
	require.Equal(t, 0, ParseNumber("JOB"))
	require.Equal(t, 0, ParseNumber(""))
	require.Equal(t, 42, ParseNumber("J4O2B"))
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "JOB001", FormatNumber(1))
	require.Equal(t, "JOB038", FormatNumber(38))
	require.Equal(t, "JOB104", FormatNumber(104))
	require.Equal(t, "JOB1042", FormatNumber(1042))
}

func TestNextAfterParse(t *testing.T) {
	// JOB037 -> JOB038
	require.Equal(t, "JOB038", FormatNumber(ParseNumber("JOB037")+1))
	// пустой список -> JOB001
	require.Equal(t, "JOB001", FormatNumber(ParseNumber("")+1))
}
