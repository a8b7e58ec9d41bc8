package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/meur/blackout/internal/migration"
	"github.com/meur/blackout/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func legacyMarker(id, userID, name, description string) models.Marker {
	return models.Marker{
		ID:          id,
		UserID:      userID,
		Position:    models.LatLng{Lat: -41.29, Lng: 174.78},
		Name:        name,
		Description: description,
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestCreateAndGetMarker(t *testing.T) {
	store := newTestStore(t)

	d := 12.5
	m := legacyMarker("", "writer", "Bridge", "Piece/Bombing")
	m.DistanceFromCenter = &d
	require.NoError(t, store.CreateMarker(&m))
	require.NotEmpty(t, m.ID)

	got, err := store.GetMarker(m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "writer", got.UserID)
	assert.Equal(t, "Bridge", got.Name)
	assert.Equal(t, m.Position, got.Position)
	assert.Nil(t, got.RepEarned)
	assert.Nil(t, got.RepBreakdown)
	assert.Nil(t, got.MigratedAt)
	require.NotNil(t, got.DistanceFromCenter)
	assert.Equal(t, 12.5, *got.DistanceFromCenter)
	assert.Equal(t, []string{}, got.Likes)
	assert.Equal(t, []models.Comment{}, got.Comments)
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
}

func TestGetMarker_Missing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetMarker("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveMarkers_PersistsMigration(t *testing.T) {
	store := newTestStore(t)

	a := legacyMarker("a", "writer", "Train", "Burner/Heater")
	b := legacyMarker("b", "writer", "ATM Machine", "Tag/Signature")
	require.NoError(t, store.CreateMarker(&a))
	require.NoError(t, store.CreateMarker(&b))

	markers, err := store.ListMarkers("")
	require.NoError(t, err)
	result := migration.BulkMigrateWithValidation(markers)
	require.Equal(t, 2, result.SuccessCount)
	require.NoError(t, store.SaveMarkers(result.MigratedMarkers))

	got, err := store.GetMarker("b")
	require.NoError(t, err)
	assert.Equal(t, models.SurfaceEBox, got.Surface)
	assert.Equal(t, models.GraffitiTag, got.GraffitiType)
	require.NotNil(t, got.RepEarned)
	require.NotNil(t, got.RepBreakdown)
	assert.Equal(t, *got.RepEarned, got.RepBreakdown.TotalRep)
	assert.True(t, got.IsEdited)
	assert.NotNil(t, got.MigratedAt)

	stats := migration.GetMigrationStats(mustList(t, store, ""))
	assert.Equal(t, 100, stats.MigrationPercentage)
}

func mustList(t *testing.T, store *Store, userID string) []models.Marker {
	t.Helper()
	markers, err := store.ListMarkers(userID)
	require.NoError(t, err)
	return markers
}

func TestListMarkers_FiltersByUser(t *testing.T) {
	store := newTestStore(t)

	for i, user := range []string{"a", "b", "a"} {
		m := legacyMarker("", user, "Wall", "Tag/Signature")
		m.CreatedAt = m.CreatedAt.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.CreateMarker(&m))
	}

	assert.Len(t, mustList(t, store, "a"), 2)
	assert.Len(t, mustList(t, store, "b"), 1)
	assert.Len(t, mustList(t, store, ""), 3)
	assert.Empty(t, mustList(t, store, "nobody"))
}

func TestUpdateAndDeleteMarker(t *testing.T) {
	store := newTestStore(t)

	m := legacyMarker("u1", "writer", "Wall", "Tag/Signature")
	require.NoError(t, store.CreateMarker(&m))

	m.Name = "Fence"
	require.NoError(t, store.UpdateMarker(&m))
	got, err := store.GetMarker("u1")
	require.NoError(t, err)
	assert.Equal(t, "Fence", got.Name)

	missing := legacyMarker("ghost", "writer", "Wall", "")
	assert.ErrorIs(t, store.UpdateMarker(&missing), ErrNotFound)

	require.NoError(t, store.DeleteMarker("u1"))
	assert.ErrorIs(t, store.DeleteMarker("u1"), ErrNotFound)
}

func TestLikesAndComments(t *testing.T) {
	store := newTestStore(t)

	m := legacyMarker("s1", "writer", "Wall", "Tag/Signature")
	require.NoError(t, store.CreateMarker(&m))

	_, err := store.AddLike("s1", "fan")
	require.NoError(t, err)
	got, err := store.AddLike("s1", "fan")
	require.NoError(t, err)
	assert.Equal(t, []string{"fan"}, got.Likes)

	got, err = store.RemoveLike("s1", "fan")
	require.NoError(t, err)
	assert.Empty(t, got.Likes)

	c, err := store.AddComment("s1", models.CommentCreate{UserID: "fan", Text: "clean lines"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	stored, err := store.GetMarker("s1")
	require.NoError(t, err)
	require.Len(t, stored.Comments, 1)
	assert.Equal(t, "clean lines", stored.Comments[0].Text)

	_, err = store.AddLike("missing", "fan")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.AddComment("missing", models.CommentCreate{UserID: "fan", Text: "?"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRep(t *testing.T) {
	store := newTestStore(t)

	total, count, err := store.UserRep("writer")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, count)

	for _, m := range migration.MigrateMarkers([]models.Marker{
		legacyMarker("1", "writer", "Wall", "Tag/Signature"),    // 15
		legacyMarker("2", "writer", "Pole", "Mural/Production"), // 110
		legacyMarker("3", "other", "Wall", "Tag/Signature"),
	}) {
		m := m
		require.NoError(t, store.CreateMarker(&m))
	}

	total, count, err = store.UserRep("writer")
	require.NoError(t, err)
	assert.Equal(t, 125, total)
	assert.Equal(t, 2, count)
}
