package databases_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/models"
)

func TestMemoryInvitationsRoundTrip(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Invitations()
	ctx := context.Background()

	inv := models.Invitation{ID: "inv-1", UserID: "user-1", URLSlug: "slug-one", IsPublished: true, CreatedAt: time.Now().UTC()}
	assert.NoError(t, db.InsertOne(ctx, inv))

	byID, err := db.FindByID(ctx, "inv-1")
	assert.NoError(t, err)
	assert.Equal(t, "slug-one", byID.URLSlug)

	bySlug, err := db.FindBySlug(ctx, "slug-one")
	assert.NoError(t, err)
	assert.Equal(t, "inv-1", bySlug.ID)

	published, err := db.FindPublishedBySlug(ctx, "slug-one")
	assert.NoError(t, err)
	assert.Equal(t, "inv-1", published.ID)

	_, err = db.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, databases.ErrNotFound)

	count, err := db.CountDocuments(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMemoryInvitationsDuplicateSlug(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Invitations()
	ctx := context.Background()

	assert.NoError(t, db.InsertOne(ctx, models.Invitation{ID: "a", URLSlug: "same"}))
	err := db.InsertOne(ctx, models.Invitation{ID: "b", URLSlug: "same"})
	assert.ErrorIs(t, err, databases.ErrDuplicateSlug)

	// the loser left no trace
	_, err = db.FindByID(ctx, "b")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestMemoryInvitationsConcurrentSlugClaim(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Invitations()
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := db.InsertOne(ctx, models.Invitation{ID: string(rune('a' + n)), URLSlug: "contested"})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, databases.ErrDuplicateSlug)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes, "exactly one writer may claim a slug")
}

func TestMemoryInvitationsFindByUserIDOrdering(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Invitations()
	ctx := context.Background()

	base := time.Now().UTC()
	assert.NoError(t, db.InsertOne(ctx, models.Invitation{ID: "b", UserID: "u", URLSlug: "s2", CreatedAt: base.Add(time.Minute)}))
	assert.NoError(t, db.InsertOne(ctx, models.Invitation{ID: "a", UserID: "u", URLSlug: "s1", CreatedAt: base}))
	assert.NoError(t, db.InsertOne(ctx, models.Invitation{ID: "c", UserID: "other", URLSlug: "s3", CreatedAt: base}))

	list, err := db.FindByUserID(ctx, "u")
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)

	// listing is read-only: a second call sees the same set
	again, err := db.FindByUserID(ctx, "u")
	assert.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestMemoryUsersDuplicateEmail(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Users()
	ctx := context.Background()

	assert.NoError(t, db.InsertOne(ctx, models.User{ID: "u1", Email: "a@b.c"}))
	err := db.InsertOne(ctx, models.User{ID: "u2", Email: "a@b.c"})
	assert.ErrorIs(t, err, databases.ErrDuplicateEmail)

	found, err := db.FindByEmail(ctx, "a@b.c")
	assert.NoError(t, err)
	assert.Equal(t, "u1", found.ID)
}

func TestMemoryUsersSetPremium(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Users()
	ctx := context.Background()

	assert.NoError(t, db.InsertOne(ctx, models.User{ID: "u1", Email: "a@b.c"}))
	assert.NoError(t, db.SetPremium(ctx, "u1", true))

	u, err := db.FindByID(ctx, "u1")
	assert.NoError(t, err)
	assert.True(t, u.IsPremium)

	assert.ErrorIs(t, db.SetPremium(ctx, "missing", true), databases.ErrNotFound)
}

func TestMemorySessionsExpiry(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Sessions()
	ctx := context.Background()
	now := time.Now().UTC()

	assert.NoError(t, db.InsertOne(ctx, models.Session{Token: "live", ExpiresAt: now.Add(time.Hour)}))
	assert.NoError(t, db.InsertOne(ctx, models.Session{Token: "dead", ExpiresAt: now.Add(-time.Hour)}))

	purged, err := db.DeleteExpired(ctx, now)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	_, err = db.FindByToken(ctx, "dead")
	assert.ErrorIs(t, err, databases.ErrNotFound)
	_, err = db.FindByToken(ctx, "live")
	assert.NoError(t, err)
}

func TestMemoryPaymentsUpdateStatus(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Payments()
	ctx := context.Background()

	tx := models.PaymentTransaction{ID: "tx1", SessionID: "cs_123", PaymentStatus: models.PaymentStatusInitiated}
	assert.NoError(t, db.InsertOne(ctx, tx))
	assert.NoError(t, db.UpdateStatus(ctx, "cs_123", models.PaymentStatusPaid))

	got, err := db.FindBySessionID(ctx, "cs_123")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)

	assert.ErrorIs(t, db.UpdateStatus(ctx, "missing", models.PaymentStatusPaid), databases.ErrNotFound)
}

func TestMemoryTemplatesSeedOrder(t *testing.T) {
	store := databases.NewMemoryStore()
	db := store.Templates()
	ctx := context.Background()

	seed := models.DefaultTemplates()
	assert.NoError(t, db.InsertMany(ctx, seed))

	all, err := db.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, len(seed))
	assert.Equal(t, "classic-elegance", all[0].ID)

	count, err := db.CountDocuments(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, len(seed), count)
}
