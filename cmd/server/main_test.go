package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ghosthunt/ghosthunt-server/internal/config"
	"github.com/ghosthunt/ghosthunt-server/internal/store"
	"github.com/ghosthunt/ghosthunt-server/internal/store/mocks"
)

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleHighscores(t *testing.T) {
	scores := store.NewMemoryStore()
	ctx := context.Background()
	for _, s := range []int{4, 12, 8} {
		require.NoError(t, scores.Submit(ctx, store.NewEntry("mira", s, 1, 0)))
	}

	rec := httptest.NewRecorder()
	handleHighscores(scores, rec, httptest.NewRequest(http.MethodGet, "/highscores", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var top []store.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	require.Len(t, top, 3)
	assert.Equal(t, 12, top[0].Score)
}

func TestHandleHighscores_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	scores := mocks.NewMockHighscoreStore(ctrl)
	scores.EXPECT().Top(gomock.Any(), highscoreListSize).Return(nil, errors.New("down"))

	rec := httptest.NewRecorder()
	handleHighscores(scores, rec, httptest.NewRequest(http.MethodGet, "/highscores", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOpenStore_MemoryWithoutDatabaseURL(t *testing.T) {
	s, err := openStore(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, s)
}
