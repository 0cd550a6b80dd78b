package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarService(t *testing.T) {
	s := NewCalendarService()

	months := s.Months()
	require.Len(t, months, 12)
	assert.Equal(t, Month{Value: 1, Name: "January"}, months[0])
	assert.Equal(t, Month{Value: 12, Name: "December"}, months[11])

	years := s.Years()
	require.Len(t, years, 20)
	assert.Equal(t, 2021, years[0])
	assert.Equal(t, 2040, years[19])
}
