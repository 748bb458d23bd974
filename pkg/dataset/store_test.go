package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []RawRecord {
	return []RawRecord{
		{SensorID: "S1", Region: "North India"},
		{SensorID: "S2", Region: "south usa"},
		{SensorID: "S3", Region: "North India"},
		{SensorID: "S4", Region: ""},
		{SensorID: "S5", Region: "South USA"},
	}
}

func TestNewStore_CopiesInput(t *testing.T) {
	recs := fixture()
	st := NewStore(recs)
	recs[0].SensorID = "mutated"

	assert.Equal(t, "S1", st.Records()[0].SensorID)

	out := st.Records()
	out[1].SensorID = "mutated"
	assert.Equal(t, "S2", st.Records()[1].SensorID)
}

func TestStore_Window(t *testing.T) {
	st := NewStore(fixture())

	w := st.Window(3)
	require.Len(t, w, 3)
	assert.Equal(t, []string{"S1", "S2", "S3"}, sensors(w))

	assert.Len(t, st.Window(0), 5)
	assert.Len(t, st.Window(50), 5)
	assert.Empty(t, Empty().Window(3))
}

func TestStore_ForLocation(t *testing.T) {
	st := NewStore(fixture())

	assert.Len(t, st.ForLocation(DefaultLocation), 5)
	assert.Len(t, st.ForLocation(""), 5)
	assert.Equal(t, []string{"S1", "S3"}, sensors(st.ForLocation("north india")))
	assert.Equal(t, []string{"S2", "S5"}, sensors(st.ForLocation("South USA")))
	assert.Empty(t, st.ForLocation("Mumbai"))
}

func TestStore_Regions(t *testing.T) {
	st := NewStore(fixture())
	assert.Equal(t, []string{"North India", "south usa"}, st.Regions())
	assert.Empty(t, Empty().Regions())
}

func sensors(recs []RawRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.SensorID)
	}
	return out
}

func TestStore_ByCropType(t *testing.T) {
	st := NewStore([]RawRecord{
		{SensorID: "S1", CropType: "Wheat"},
		{SensorID: "S2", CropType: "Rice"},
		{SensorID: "S3", CropType: "wheat"},
	})
	got := st.ByCropType(" WHEAT ")
	require.Len(t, got, 2)
	assert.Equal(t, "S1", got[0].SensorID)
	assert.Equal(t, "S3", got[1].SensorID)
	assert.Empty(t, st.ByCropType("Cotton"))
}
