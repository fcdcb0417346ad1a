package repo_test

import (
	"context"
	"os"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/repo"
	"github.com/pkordes/trip-journal/testutil"
)

// newTestRepo returns an EntryRepo backed by a file in a fresh temp directory,
// along with the file path so tests can inspect or reload it.
func newTestRepo(t *testing.T) (repo.EntryRepo, string) {
	t.Helper()
	path := testutil.TempPath(t, "trip-data.json")
	r := repo.NewEntryRepo(path)
	require.NoError(t, r.Load(context.Background()))
	return r, path
}

// entryFixture returns a domain.Entry with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func entryFixture() domain.Entry {
	return domain.Entry{
		Date:          time.Date(2026, 1, 13, 9, 30, 0, 0, time.UTC),
		Location:      "Tokyo",
		Activities:    "Senso-ji, lunch in Asakusa",
		Liked:         []string{"food", "cultural sites"},
		Disliked:      []string{"crowds"},
		OnsenVisit:    true,
		OnsenDetails:  "hotel rooftop bath",
		WalkingNotes:  "no issues",
		OverallRating: "4",
	}
}

func TestEntryRepo_Load_MissingFile(t *testing.T) {
	r, _ := newTestRepo(t)

	got, err := r.All(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEntryRepo_Load_CorruptFile(t *testing.T) {
	path := testutil.WriteFile(t, "trip-data.json", "{not json")
	r := repo.NewEntryRepo(path)

	err := r.Load(context.Background())

	// The error is reported for logging, but the repo falls back to empty.
	require.Error(t, err)
	got, err := r.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntryRepo_Append(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	input := entryFixture()
	got, err := r.Append(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Date.UnixMilli(), got.ID, "ID should derive from the entry timestamp")
	assert.Equal(t, input.Location, got.Location)
	assert.True(t, got.Date.Equal(input.Date))
}

func TestEntryRepo_Append_IDsStrictlyIncrease(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	// Same timestamp three times, then an earlier one: IDs must still increase.
	fixture := entryFixture()
	var ids []int64
	for i := 0; i < 3; i++ {
		got, err := r.Append(ctx, fixture)
		require.NoError(t, err)
		ids = append(ids, got.ID)
	}
	earlier := fixture
	earlier.Date = fixture.Date.Add(-time.Hour)
	got, err := r.Append(ctx, earlier)
	require.NoError(t, err)
	ids = append(ids, got.ID)

	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i], ids[i-1])
	}
}

func TestEntryRepo_Append_NilListsStoredAsEmpty(t *testing.T) {
	r, path := newTestRepo(t)

	e := entryFixture()
	e.Liked = nil
	e.Disliked = nil
	_, err := r.Append(context.Background(), e)
	require.NoError(t, err)

	raw := testutil.ReadFile(t, path)
	assert.Contains(t, raw, `"liked": []`)
	assert.Contains(t, raw, `"disliked": []`)
}

func TestEntryRepo_AppendOnly_PreservesOrder(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	locations := []string{"Tokyo", "Hakone", "Kyoto", "Rusutsu"}
	for _, loc := range locations {
		e := entryFixture()
		e.Location = loc
		_, err := r.Append(ctx, e)
		require.NoError(t, err)
	}

	got, err := r.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(locations))
	for i, loc := range locations {
		assert.Equal(t, loc, got[i].Location)
	}
}

func TestEntryRepo_All_Idempotent(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	_, err := r.Append(ctx, entryFixture())
	require.NoError(t, err)

	first, err := r.All(ctx)
	require.NoError(t, err)
	second, err := r.All(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEntryRepo_All_ReturnsCopy(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	_, err := r.Append(ctx, entryFixture())
	require.NoError(t, err)

	got, err := r.All(ctx)
	require.NoError(t, err)
	got[0].Location = "tampered"

	again, err := r.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", again[0].Location)
}

func TestEntryRepo_Latest(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	_, ok, err := r.Latest(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty journal has no latest entry")

	first := entryFixture()
	second := entryFixture()
	second.Location = "Hokkaido"
	_, err = r.Append(ctx, first)
	require.NoError(t, err)
	_, err = r.Append(ctx, second)
	require.NoError(t, err)

	got, ok, err := r.Latest(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Hokkaido", got.Location)
}

// TestEntryRepo_RoundTrip simulates a restart: a second repo loading the same
// file must see identical entries.
func TestEntryRepo_RoundTrip(t *testing.T) {
	r, path := newTestRepo(t)
	ctx := context.Background()

	written, err := r.Append(ctx, entryFixture())
	require.NoError(t, err)

	reloaded := repo.NewEntryRepo(path)
	require.NoError(t, reloaded.Load(ctx))

	got, err := reloaded.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, written.ID, got[0].ID)
	assert.True(t, written.Date.Equal(got[0].Date))
	assert.Equal(t, written.Location, got[0].Location)
	assert.Equal(t, written.Activities, got[0].Activities)
	assert.Equal(t, written.Liked, got[0].Liked)
	assert.Equal(t, written.Disliked, got[0].Disliked)
	assert.Equal(t, written.OnsenVisit, got[0].OnsenVisit)
	assert.Equal(t, written.OnsenDetails, got[0].OnsenDetails)
	assert.Equal(t, written.WalkingNotes, got[0].WalkingNotes)
	assert.Equal(t, written.OverallRating, got[0].OverallRating)
}

func TestEntryRepo_Append_WriteFailure(t *testing.T) {
	r := repo.NewEntryRepo(testutil.UnwritablePath(t, "trip-data.json"))
	ctx := context.Background()

	_, err := r.Append(ctx, entryFixture())

	require.ErrorIs(t, err, domain.ErrStorage)

	// The failed append must not linger in memory.
	got, err := r.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntryRepo_Append_LeavesNoTempFiles(t *testing.T) {
	r, path := newTestRepo(t)

	_, err := r.Append(context.Background(), entryFixture())
	require.NoError(t, err)

	dir, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, dir, 1)
	assert.Equal(t, "trip-data.json", dir[0].Name())
}

// TestEntryRepo_Append_Concurrent verifies that simultaneous submissions are
// serialised: every append survives on disk and IDs stay strictly increasing.
func TestEntryRepo_Append_Concurrent(t *testing.T) {
	const n = 25
	r, path := newTestRepo(t)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e := entryFixture()
			e.Location = fmt.Sprintf("Stop %d", i)
			_, err := r.Append(context.Background(), e)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	reloaded := repo.NewEntryRepo(path)
	require.NoError(t, reloaded.Load(context.Background()))
	got, err := reloaded.All(context.Background())
	require.NoError(t, err)
	require.Len(t, got, n)

	seen := make(map[string]bool, n)
	for i, e := range got {
		seen[e.Location] = true
		if i > 0 {
			assert.Greater(t, e.ID, got[i-1].ID, "IDs must strictly increase in file order")
		}
	}
	assert.Len(t, seen, n, "every submission must be stored exactly once")
}
