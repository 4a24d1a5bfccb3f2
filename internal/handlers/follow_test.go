package handlers_test

import (
	"net/http"
	"testing"

	"scribe/internal/cache"
	"scribe/internal/db"
	"scribe/internal/models"
	"scribe/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestSelfFollowIsNoop(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	a := testutil.CreateUser(t, "ana")
	cookies := testutil.Login(t, r, a.Email)

	w := testutil.Do(r, http.MethodPost, "/profile/ana/follow", nil, cookies)

	// Silent no-op: back to the profile, no edge, no error.
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/profile/ana", w.Header().Get("Location"))

	var count int64
	db.DB.Model(&models.Follow{}).Count(&count)
	require.Zero(t, count)
}

func TestSelfFollowRejectedAtStore(t *testing.T) {
	testutil.OpenTestDB(t)
	a := testutil.CreateUser(t, "ana")

	err := db.DB.Create(&models.Follow{UserID: a.ID, AuthorID: a.ID}).Error
	require.ErrorIs(t, err, models.ErrSelfFollow)
}

func TestFollowIsIdempotent(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	a := testutil.CreateUser(t, "ana")
	testutil.CreateUser(t, "ben")
	cookies := testutil.Login(t, r, a.Email)

	for i := 0; i < 2; i++ {
		w := testutil.Do(r, http.MethodPost, "/profile/ben/follow", nil, cookies)
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/profile/ben", w.Header().Get("Location"))
	}

	var count int64
	db.DB.Model(&models.Follow{}).Count(&count)
	require.EqualValues(t, 1, count, "one edge per ordered pair")
}

func TestUnfollowIsIdempotent(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	a := testutil.CreateUser(t, "ana")
	b := testutil.CreateUser(t, "ben")
	require.NoError(t, db.DB.Create(&models.Follow{UserID: a.ID, AuthorID: b.ID}).Error)
	cookies := testutil.Login(t, r, a.Email)

	for i := 0; i < 2; i++ {
		w := testutil.Do(r, http.MethodPost, "/profile/ben/unfollow", nil, cookies)
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/profile/ben", w.Header().Get("Location"))
	}

	var count int64
	db.DB.Model(&models.Follow{}).Count(&count)
	require.Zero(t, count)
}

func TestFollowUnknownUser(t *testing.T) {
	testutil.OpenTestDB(t)
	pages, err := cache.New(16)
	require.NoError(t, err)
	r := testutil.NewTestRouter(t, pages, testutil.TestConfig())

	a := testutil.CreateUser(t, "ana")
	cookies := testutil.Login(t, r, a.Email)

	w := testutil.Do(r, http.MethodPost, "/profile/ghost/follow", nil, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}
