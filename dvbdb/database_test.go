package dvbdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEpochResetClearsRegionsAndClutsAndObjects(t *testing.T) {
	db := New(1024)
	region, ok := db.Regions().Add(0)
	require.True(t, ok)
	require.True(t, db.AddRegionObject(region, 7, 0, 0))
	require.Equal(t, 1, db.Regions().Count())

	db.EpochReset()

	require.Equal(t, 0, db.Regions().Count())
	require.Equal(t, 0, db.Cluts().Count())
	require.True(t, db.CanAddRegionObject())
	require.True(t, db.IsEpochStart())
}

func TestRegionPoolCapacity(t *testing.T) {
	db := New(1024)
	for i := 0; i < MaxSupportedRegions; i++ {
		_, ok := db.Regions().Add(uint8(i))
		require.True(t, ok)
	}
	_, ok := db.Regions().Add(200)
	require.False(t, ok)
}

func TestObjectRefBudgetSharedAcrossRegions(t *testing.T) {
	db := New(1024)
	r1, _ := db.Regions().Add(0)
	r2, _ := db.Regions().Add(1)

	for i := 0; i < MaxSupportedObjects; i++ {
		target := r1
		if i%2 == 0 {
			target = r2
		}
		require.True(t, db.AddRegionObject(target, uint16(i), 0, 0))
	}
	require.False(t, db.CanAddRegionObject())
	require.False(t, db.AddRegionObject(r1, 999, 0, 0))

	db.RemoveRegionObjects(r1)
	require.True(t, db.CanAddRegionObject())
}

func TestFinishPageClearsEpochStartFlag(t *testing.T) {
	db := New(1024)
	db.EpochReset()
	require.True(t, db.IsEpochStart())

	db.Page().StartParsing(0, db.Status().LastPts(), 0)
	db.Page().FinishParsing()
	db.FinishPage()

	require.False(t, db.IsEpochStart())
}

func TestSwapRenderingStates(t *testing.T) {
	db := New(1024)
	curr := db.Current()
	curr.AddRegion(1, 0, curr.DisplayBounds())
	db.SwapRenderingStates()
	require.Equal(t, 1, db.Previous().RegionCount())
	require.Equal(t, 0, db.Current().RegionCount())
}
