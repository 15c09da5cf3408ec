package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"sunning/internal/api"
	"sunning/internal/session"
	"sunning/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T, handler http.Handler) (*Service, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.New(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	client := api.NewClient(&types.Config{
		Environment:    "test",
		APIBaseURL:     srv.URL,
		HTTPTimeoutSec: 5,
	}, logger, store)

	return New(client, store, logger), store
}

func envelope(w http.ResponseWriter, statusCode int, message string, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": statusCode,
		"message":    message,
		"data":       data,
	})
}

func TestLoginPersistsSession(t *testing.T) {
	svc, store := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/login", r.URL.Path)
		envelope(w, 200, "ok", types.LoginData{
			UserID:      "tester",
			Region:      types.RegionGangwon,
			AccessToken: "tok-1",
			IsOnboarded: false,
		})
	}))

	data, err := svc.Login(context.Background(), "tester", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tester", data.UserID)

	assert.Equal(t, "tok-1", store.Token())
	assert.False(t, store.IsOnboarded())

	status := svc.Status()
	assert.True(t, status.LoggedIn)
	assert.False(t, status.Onboarded)
}

func TestLoginMissingCredentials(t *testing.T) {
	called := false
	svc, store := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := svc.Login(context.Background(), "  ", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.False(t, called, "no request may be made with empty credentials")
	assert.Empty(t, store.Token())
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	svc, store := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(w, 401, "bad credentials", nil)
	}))

	_, err := svc.Login(context.Background(), "tester", "wrong")
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad credentials", apiErr.Message)
	assert.Empty(t, store.Token())
}

func TestOnboardRequiresLogin(t *testing.T) {
	svc, _ := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	err := svc.Onboard(context.Background(), types.RegionJeju)
	assert.ErrorIs(t, err, types.ErrNotLoggedIn)
}

func TestOnboardSavesRegionAndFlag(t *testing.T) {
	var gotRegion types.Region
	svc, store := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/users/region", r.URL.Path)

		var req types.SetRegionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotRegion = req.Region
		envelope(w, 200, "ok", types.SetRegionData{Region: req.Region})
	}))

	require.NoError(t, store.SetToken("tok", false))
	require.NoError(t, svc.Onboard(context.Background(), types.RegionChungcheong))

	assert.Equal(t, types.RegionChungcheong, gotRegion)
	assert.True(t, store.IsOnboarded())
}

func TestOnboardServerFailureKeepsFlag(t *testing.T) {
	svc, store := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(w, 500, "db down", nil)
	}))

	require.NoError(t, store.SetToken("tok", false))
	err := svc.Onboard(context.Background(), types.RegionJeolla)
	require.Error(t, err)
	assert.False(t, store.IsOnboarded())
}

func TestLogoutClearsSession(t *testing.T) {
	svc, store := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	require.NoError(t, store.SetToken("tok", true))
	require.NoError(t, svc.Logout())

	assert.Empty(t, store.Token())
	assert.False(t, svc.Status().LoggedIn)
}
