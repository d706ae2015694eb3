package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentsift/talentsift/internal/auth/domain"
	"github.com/talentsift/talentsift/internal/auth/store"
)

func TestUsageSnapshotStartsAtZero(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	usage := &UsageService{Store: st}

	userID := registerVerified(t, accounts, sender, "alice@example.com", "hunter2hunter2")

	snap, err := usage.Snapshot(ctx, userID)
	require.NoError(t, err)

	for _, c := range domain.Counters() {
		require.Zero(t, snap.Counters[string(c)])
	}
	require.Equal(t, domain.SelectedCandidateLimit, snap.Limits[string(domain.CounterSelectedCandidate)])
	require.Equal(t, domain.SelectedCandidateLimit, snap.Remaining[string(domain.CounterSelectedCandidate)])
	// Unlimited counters carry no limit entry.
	require.NotContains(t, snap.Limits, string(domain.CounterFilesUploaded))
}

func TestIncrementAdvancesCounter(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	usage := &UsageService{Store: st}

	registerVerified(t, accounts, sender, "bob@example.com", "hunter2hunter2")

	snap, err := usage.Increment(ctx, "bob@example.com", domain.CounterFilesUploaded, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, snap.Counters[string(domain.CounterFilesUploaded)])

	snap, err = usage.Increment(ctx, "bob@example.com", domain.CounterFilesUploaded, 5)
	require.NoError(t, err)
	require.EqualValues(t, 6, snap.Counters[string(domain.CounterFilesUploaded)])

	// Other counters are untouched.
	require.Zero(t, snap.Counters[string(domain.CounterBatchAnalysis)])
}

func TestIncrementUnknownAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	usage := &UsageService{Store: st}

	_, err := usage.Increment(ctx, "nobody@example.com", domain.CounterFilesUploaded, 1)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestIncrementUnknownCounter(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	usage := &UsageService{Store: st}

	registerVerified(t, accounts, sender, "carol@example.com", "hunter2hunter2")

	_, err := usage.Increment(ctx, "carol@example.com", domain.Counter("bogusCounter"), 1)
	require.ErrorIs(t, err, domain.ErrUnknownCounter)
}

func TestSelectedCandidateCeiling(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	usage := &UsageService{Store: st}

	registerVerified(t, accounts, sender, "dave@example.com", "hunter2hunter2")

	// Walk the counter up to its ceiling one at a time.
	for i := int64(1); i <= domain.SelectedCandidateLimit; i++ {
		snap, err := usage.Increment(ctx, "dave@example.com", domain.CounterSelectedCandidate, 1)
		require.NoError(t, err)
		require.Equal(t, i, snap.Counters[string(domain.CounterSelectedCandidate)])
		require.Equal(t, domain.SelectedCandidateLimit-i, snap.Remaining[string(domain.CounterSelectedCandidate)])
	}

	// The 11th increment is refused and the counter stays put.
	_, err := usage.Increment(ctx, "dave@example.com", domain.CounterSelectedCandidate, 1)
	require.ErrorIs(t, err, store.ErrLimitReached)

	snap, err := usage.Snapshot(ctx, mustUserID(t, st, "dave@example.com"))
	require.NoError(t, err)
	require.Equal(t, domain.SelectedCandidateLimit, snap.Counters[string(domain.CounterSelectedCandidate)])
	require.Zero(t, snap.Remaining[string(domain.CounterSelectedCandidate)])
}

func TestSelectedCandidateCeilingRejectsOvershootingBatch(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	usage := &UsageService{Store: st}

	registerVerified(t, accounts, sender, "erin@example.com", "hunter2hunter2")

	snap, err := usage.Increment(ctx, "erin@example.com", domain.CounterSelectedCandidate, 8)
	require.NoError(t, err)
	require.EqualValues(t, 8, snap.Counters[string(domain.CounterSelectedCandidate)])

	// 8 + 3 > 10: refused outright, not clamped.
	_, err = usage.Increment(ctx, "erin@example.com", domain.CounterSelectedCandidate, 3)
	require.ErrorIs(t, err, store.ErrLimitReached)

	snap, err = usage.Increment(ctx, "erin@example.com", domain.CounterSelectedCandidate, 2)
	require.NoError(t, err)
	require.Equal(t, domain.SelectedCandidateLimit, snap.Counters[string(domain.CounterSelectedCandidate)])
}

func TestConcurrentIncrementsLoseNoUpdates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	usage := &UsageService{Store: st}

	registerVerified(t, accounts, sender, "frank@example.com", "hunter2hunter2")

	const workers = 10
	const perWorker = 5

	errCh := make(chan error, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := 0; p < perWorker; p++ {
				_, err := usage.Increment(ctx, "frank@example.com", domain.CounterBatchAnalysis, 1)
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	snap, err := usage.Snapshot(ctx, mustUserID(t, st, "frank@example.com"))
	require.NoError(t, err)
	require.EqualValues(t, workers*perWorker, snap.Counters[string(domain.CounterBatchAnalysis)])
}

func TestConcurrentIncrementsNeverPassCeiling(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	usage := &UsageService{Store: st}

	registerVerified(t, accounts, sender, "grace@example.com", "hunter2hunter2")

	// Twice as many attempts as the ceiling allows; exactly the surplus must
	// be refused, whatever the interleaving.
	const attempts = 2 * domain.SelectedCandidateLimit

	errCh := make(chan error, attempts)
	var wg sync.WaitGroup
	for a := int64(0); a < attempts; a++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := usage.Increment(ctx, "grace@example.com", domain.CounterSelectedCandidate, 1)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var refused int
	for err := range errCh {
		if err != nil {
			require.ErrorIs(t, err, store.ErrLimitReached)
			refused++
		}
	}
	require.EqualValues(t, attempts-domain.SelectedCandidateLimit, refused)

	snap, err := usage.Snapshot(ctx, mustUserID(t, st, "grace@example.com"))
	require.NoError(t, err)
	require.EqualValues(t, domain.SelectedCandidateLimit, snap.Counters[string(domain.CounterSelectedCandidate)])
	require.Zero(t, snap.Remaining[string(domain.CounterSelectedCandidate)])
}

func mustUserID(t *testing.T, st store.Store, email string) string {
	t.Helper()
	u, err := st.Users().GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	return u.ID
}
