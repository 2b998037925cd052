package sequence

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go-hrms/internal/common/apperrors"
	"go-hrms/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAllocateReturnsCounterAfterIncrement(t *testing.T) {
	svc := NewSequenceService(newMemoryRepo(Sequence{Type: "Report", Prefix: "RPT", NextAvailableNumber: 100}), zap.NewNop())

	alloc, err := svc.Allocate(context.Background(), "Report")
	require.NoError(t, err)
	assert.Equal(t, int64(101), alloc.NextAvailableNumber)
	assert.Equal(t, "RPT100", alloc.Code())
}

func TestAllocateUnknownTypeIsNotFound(t *testing.T) {
	svc := NewSequenceService(newMemoryRepo(), zap.NewNop())

	_, err := svc.Allocate(context.Background(), "Report")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// The memory repo serialises increments the way FindOneAndUpdate with $inc does on the
// server; this checks the service adds no race of its own. The command shape sent to
// Mongo is covered in database/store_test.go.
func TestConcurrentAllocationsAreDistinctAndGapless(t *testing.T) {
	const n = 64
	svc := NewSequenceService(newMemoryRepo(Sequence{Type: "Report", Prefix: "R-", NextAvailableNumber: 1}), zap.NewNop())

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[string]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			alloc, err := svc.Allocate(context.Background(), "Report")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			codes[alloc.Code()] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, codes, n)
	for i := 1; i <= n; i++ {
		assert.True(t, codes[fmt.Sprintf("R-%d", i)], "missing code R-%d", i)
	}
}

func TestCreateSequence(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewSequenceService(repo, zap.NewNop())
	ctx := context.WithValue(context.Background(), utils.UserClaimsKey, &utils.UserClaims{UserID: "u-7"})

	seq, err := svc.CreateSequence(ctx, CreateSequenceRequest{Type: " Report ", Prefix: " RPT", NextAvailableNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, "Report", seq.Type)
	assert.Equal(t, "RPT", seq.Prefix)
	assert.Equal(t, "u-7", seq.CreatedBy)
	assert.False(t, seq.ID.IsZero())

	_, err = svc.CreateSequence(ctx, CreateSequenceRequest{Type: "Report", Prefix: "X", NextAvailableNumber: 1})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateSequence(ctx, CreateSequenceRequest{Type: "Leave", Prefix: "", NextAvailableNumber: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
