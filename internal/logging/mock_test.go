package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	m := &MockLogger{}
	m.Info("batch finished", Field{Key: FieldCount, Value: 3})
	m.Warn("statement failed")

	require.Len(t, m.Entries, 2)
	assert.Equal(t, "INFO", m.Entries[0].Level)
	assert.Equal(t, FieldCount, m.Entries[0].Fields[0].Key)
	assert.True(t, m.HasEntry("WARN", "statement failed"))
	assert.False(t, m.HasEntry("ERROR", "statement failed"))
}

func TestMockLoggerWithErrorCarriesContext(t *testing.T) {
	m := &MockLogger{}
	derived := m.WithError(errors.New("boom")).WithField(FieldFile, "a.pdf")
	derived.Error("decode failed")

	dm := derived.(*MockLogger)
	require.Len(t, dm.Entries, 1)
	assert.EqualError(t, dm.Entries[0].Error, "boom")
	assert.Equal(t, FieldFile, dm.Entries[0].Fields[0].Key)

	// Context stays on the derived logger.
	m.Info("plain")
	require.Len(t, m.Entries, 1)
	assert.NoError(t, m.Entries[0].Error)
}
