package bookstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2023-06-01", "2023-06-01 00:00:00"},
		{"2023-06-01 13:45:00", "2023-06-01 13:45:00"},
		{"2023-06-01T13:45:00Z", "2023-06-01 13:45:00"},
		{"2023-06-01T13:45:00", "2023-06-01 13:45:00"},
		{"", ""},
		{"  2014-07-01 ", "2014-07-01 00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestCellConversions(t *testing.T) {
	s, ok := cellString(nil)
	assert.False(t, ok)
	assert.Empty(t, s)

	s, ok = cellString([]byte("골프 바이블"))
	assert.True(t, ok)
	assert.Equal(t, "골프 바이블", s)

	s, ok = cellString(time.Date(2014, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, "2014-07-01 00:00:00", s)

	n, ok := cellInt64(int64(15000))
	assert.True(t, ok)
	assert.Equal(t, int64(15000), n)

	n, ok = cellInt64(float64(7500))
	assert.True(t, ok)
	assert.Equal(t, int64(7500), n)

	_, ok = cellInt64(nil)
	assert.False(t, ok)

	_, ok = cellInt64("abc")
	assert.False(t, ok)
}
