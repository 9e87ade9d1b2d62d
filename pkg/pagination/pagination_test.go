package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 500}
	p.Validate()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestPaginationParamsOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 10, 35)

	assert.Equal(t, 2, pg.CurrentPage)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	last := NewPagination(4, 10, 35)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", at)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(at))
}

func TestDecodeCursorEmpty(t *testing.T) {
	params := &CursorParams{}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursorInvalid(t *testing.T) {
	params := &CursorParams{Cursor: "not-base64!!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

func TestCursorParamsValidate(t *testing.T) {
	c := &CursorParams{}
	c.Validate()
	assert.Equal(t, 15, c.Limit)
	assert.Equal(t, CursorDirectionNext, c.Direction)

	c = &CursorParams{Limit: 1000, Direction: CursorDirectionPrev}
	c.Validate()
	assert.Equal(t, 100, c.Limit)
	assert.Equal(t, CursorDirectionPrev, c.Direction)
}

type cursorItem struct {
	ID        string
	CreatedAt time.Time
}

func TestNewCursorPaginationTrimsExtraItem(t *testing.T) {
	now := time.Now()
	items := []cursorItem{
		{ID: "a", CreatedAt: now},
		{ID: "b", CreatedAt: now.Add(time.Second)},
		{ID: "c", CreatedAt: now.Add(2 * time.Second)},
	}

	// Fetched limit+1 rows, so one extra signals another page
	pg, trimmed := NewCursorPagination(items, 2,
		func(i cursorItem) string { return i.ID },
		func(i cursorItem) time.Time { return i.CreatedAt },
	)

	assert.True(t, pg.HasNext)
	require.Len(t, trimmed, 2)
	require.NotNil(t, pg.NextCursor)

	decoded, err := (&CursorParams{Cursor: *pg.NextCursor}).DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "b", decoded.ID)
}

func TestNewCursorPaginationLastPage(t *testing.T) {
	items := []cursorItem{{ID: "a", CreatedAt: time.Now()}}

	pg, trimmed := NewCursorPagination(items, 5,
		func(i cursorItem) string { return i.ID },
		func(i cursorItem) time.Time { return i.CreatedAt },
	)

	assert.False(t, pg.HasNext)
	assert.Len(t, trimmed, 1)
}
