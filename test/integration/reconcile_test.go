package integration

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-web/atelier/pkg/model"
	gormstore "github.com/atelier-web/atelier/pkg/server/store/gorm"
)

func TestTagReconciliation(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=1 to run.")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tc, err := NewTestContext(ctx)
	if err != nil {
		t.Fatalf("Failed to create test context: %v", err)
	}
	defer tc.Close(ctx)

	tagsStore := gormstore.NewTagsStore(tc.DB)

	countTag := func(name string) int64 {
		var count int64
		require.NoError(t, tc.DB.Raw(`SELECT count(*) FROM tags WHERE name = ?`, name).Scan(&count).Error)
		return count
	}

	t.Run("concurrent first use converges on one identity", func(t *testing.T) {
		require.NoError(t, tc.ResetData())

		const workers = 16
		start := make(chan struct{})
		results := make(chan []model.Tag, workers)
		errs := make(chan error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				tags, err := tagsStore.ReconcileTags([]string{"fresh-label"})
				results <- tags
				errs <- err
			}()
		}
		close(start)
		wg.Wait()
		close(results)
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}

		ids := make(map[uint]struct{})
		for tags := range results {
			require.Len(t, tags, 1)
			assert.Equal(t, "fresh-label", tags[0].Name)
			ids[tags[0].ID] = struct{}{}
		}
		assert.Len(t, ids, 1, "concurrent reconciles yielded multiple identities: %v", ids)
		assert.EqualValues(t, 1, countTag("fresh-label"))
	})

	t.Run("sequential reuse returns the same identity", func(t *testing.T) {
		require.NoError(t, tc.ResetData())

		first, err := tagsStore.ReconcileTags([]string{"studio"})
		require.NoError(t, err)
		second, err := tagsStore.ReconcileTags([]string{"studio"})
		require.NoError(t, err)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)
		assert.EqualValues(t, 1, countTag("studio"))
	})

	t.Run("long labels are stored intact", func(t *testing.T) {
		require.NoError(t, tc.ResetData())

		label := strings.Repeat("label-", 50)
		tags, err := tagsStore.ReconcileTags([]string{label})
		require.NoError(t, err)

		require.Len(t, tags, 1)
		assert.Equal(t, label, tags[0].Name)
		assert.EqualValues(t, 1, countTag(label))
	})
}
