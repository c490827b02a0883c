package indicators

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSONNullForMissing(t *testing.T) {
	b, err := json.Marshal(Missing())
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = json.Marshal(Number(2.43))
	require.NoError(t, err)
	assert.Equal(t, "2.43", string(b))

	var v Value
	require.NoError(t, json.Unmarshal([]byte("null"), &v))
	assert.False(t, v.Valid)

	require.NoError(t, json.Unmarshal([]byte("477000000000"), &v))
	assert.True(t, v.Valid)
	assert.InDelta(t, 477_000_000_000, v.Float, 0.5)
}

func TestTableAccessorsReturnCopies(t *testing.T) {
	table := analysisTable()

	years := table.Years()
	years[0] = 1900
	assert.Equal(t, 2015, table.MinYear(), "mutating the returned slice must not touch the table")

	series, err := table.Series(ColGDP)
	require.NoError(t, err)
	series[0] = Missing()

	v, err := table.Value(ColGDP, 2015)
	require.NoError(t, err)
	assert.True(t, v.Valid)
}

func TestTableLookupErrors(t *testing.T) {
	table := analysisTable()

	_, err := table.Value("No Such Indicator", 2015)
	assert.ErrorIs(t, err, ErrUnknownIndicator)

	_, err = table.Value(ColGDP, 1900)
	assert.ErrorIs(t, err, ErrYearOutOfRange)

	_, err = table.Series("No Such Indicator")
	assert.ErrorIs(t, err, ErrUnknownIndicator)
}
