package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, b *Backend, table string) int64 {
	t.Helper()
	rs, err := b.Query(context.Background(), "SELECT COUNT(*) FROM "+table)
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())
	return rs.Rows[0][0].(int64)
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, b *Backend)
		check func(t *testing.T, b *Backend, seeded bool)
	}{
		{
			name: "seeds the sample data on an empty database",
			check: func(t *testing.T, b *Backend, seeded bool) {
				assert.True(t, seeded)
				assert.Equal(t, int64(len(seedBooks)), countRows(t, b, "Book"))
				assert.Equal(t, int64(len(seedCustomers)), countRows(t, b, "Customer"))
				assert.Equal(t, int64(len(seedOrders)), countRows(t, b, "Orders"))
			},
		},
		{
			name: "missing phone is stored as NULL",
			check: func(t *testing.T, b *Backend, seeded bool) {
				rs, err := b.Query(context.Background(), "SELECT phone FROM Customer WHERE custid = 5")
				require.NoError(t, err)
				require.Equal(t, 1, rs.Len())
				assert.Nil(t, rs.Rows[0][0])
			},
		},
		{
			name: "existing books leave the database untouched",
			setup: func(t *testing.T, b *Backend) {
				_, err := b.Exec(context.Background(), "INSERT INTO Book (bookid, bookname) VALUES (100, 'mine')")
				require.NoError(t, err)
			},
			check: func(t *testing.T, b *Backend, seeded bool) {
				assert.False(t, seeded)
				assert.Equal(t, int64(1), countRows(t, b, "Book"))
				assert.Equal(t, int64(0), countRows(t, b, "Customer"))
			},
		},
		{
			name: "existing customers leave the database untouched",
			setup: func(t *testing.T, b *Backend) {
				_, err := b.Exec(context.Background(), "INSERT INTO Customer (custid, name, address) VALUES (1, 'Park', 'Seoul')")
				require.NoError(t, err)
			},
			check: func(t *testing.T, b *Backend, seeded bool) {
				assert.False(t, seeded)
				assert.Equal(t, int64(0), countRows(t, b, "Book"))
				assert.Equal(t, int64(1), countRows(t, b, "Customer"))
				assert.Equal(t, int64(0), countRows(t, b, "Orders"))

				rs, err := b.Query(context.Background(), "SELECT name FROM Customer WHERE custid = 1")
				require.NoError(t, err)
				require.Equal(t, 1, rs.Len())
				assert.Equal(t, "Park", rs.Rows[0][0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBackend(t)
			if tt.setup != nil {
				tt.setup(t, b)
			}
			seeded, err := b.Seed(context.Background())
			require.NoError(t, err)
			tt.check(t, b, seeded)
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	first, err := b.Seed(ctx)
	require.NoError(t, err)
	second, err := b.Seed(ctx)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, int64(len(seedBooks)), countRows(t, b, "Book"))
}
