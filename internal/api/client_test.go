package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sunning/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func testClient(t *testing.T, token string, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	config := &types.Config{
		Environment:    "test",
		APIBaseURL:     srv.URL,
		HTTPTimeoutSec: 5,
	}
	return NewClient(config, logger, staticToken(token))
}

func envelope(w http.ResponseWriter, statusCode int, message string, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": statusCode,
		"message":    message,
		"data":       data,
	})
}

func TestClientAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	c := testClient(t, "tok-abc", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		envelope(w, 200, "ok", types.GetRegionData{Region: types.RegionSeoul})
	}))

	_, err := c.UserRegion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientNoTokenSendsUnauthenticated(t *testing.T) {
	var gotAuth string
	c := testClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		envelope(w, 200, "ok", types.GetRegionData{Region: types.RegionSeoul})
	}))

	_, err := c.UserRegion(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientLoginSkipsBearer(t *testing.T) {
	var gotAuth string
	c := testClient(t, "stale-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)

		var req types.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tester", req.UserID)

		envelope(w, 200, "ok", types.LoginData{
			UserID:      "tester",
			Region:      types.RegionJeju,
			AccessToken: "fresh",
			IsOnboarded: true,
		})
	}))

	data, err := c.Login(context.Background(), types.LoginRequest{UserID: "tester", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "login must not carry a stale bearer token")
	assert.Equal(t, "fresh", data.AccessToken)
	assert.True(t, data.IsOnboarded)
}

func TestClientEnvelopeFailureOnTransportSuccess(t *testing.T) {
	// HTTP 200 with an application-level failure inside the envelope.
	c := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(w, 400, "region is required", nil)
	}))

	_, err := c.UserRegion(context.Background())
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "region is required", apiErr.Message)
	assert.Equal(t, "region is required", apiErr.UserMessage())
}

func TestClientCreateFundingWants201(t *testing.T) {
	c := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/funding", r.URL.Path)
		envelope(w, 201, "created", types.CreateFundingData{FundingID: 42, Title: "Sun roof"})
	}))

	data, err := c.CreateFunding(context.Background(), types.CreateFundingRequest{Title: "Sun roof"})
	require.NoError(t, err)
	assert.EqualValues(t, 42, data.FundingID)
}

func TestClientCreateFundingRejects200(t *testing.T) {
	c := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope(w, 200, "accepted but not created", nil)
	}))

	_, err := c.CreateFunding(context.Background(), types.CreateFundingRequest{})
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 200, apiErr.StatusCode)
}

func TestClientFundingListQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	c := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		envelope(w, 200, "ok", []types.FundingListItem{{FundingID: 1, Title: "a"}})
	}))

	items, err := c.FundingList(context.Background(), types.ListParams{
		Region: types.RegionJeju,
		Align:  types.AlignRate,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, []string{"JEJU"}, gotQuery["region"])
	assert.Equal(t, []string{"rate"}, gotQuery["align"])
}

func TestClientFundingListOmitsEmptyParams(t *testing.T) {
	var rawQuery string
	c := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		envelope(w, 200, "ok", []types.FundingListItem{})
	}))

	_, err := c.FundingList(context.Background(), types.ListParams{})
	require.NoError(t, err)
	assert.Empty(t, rawQuery)
}

func TestClientUnauthorizedSurfacesWithoutClearing(t *testing.T) {
	c := testClient(t, "expired", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		envelope(w, 401, "token expired", nil)
	}))

	_, err := c.MyCreatedFundings(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsUnauthorized(err))

	// The token source is untouched; the next call still sends it.
	var gotAuth string
	c2 := testClient(t, "expired", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		envelope(w, 200, "ok", []types.CreatedFundingItem{})
	}))
	_, err = c2.MyCreatedFundings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer expired", gotAuth)
}

func TestClientNonEnvelopeBody(t *testing.T) {
	c := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := c.UserRegion(context.Background())
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	c := NewClient(&types.Config{APIBaseURL: srv.URL, HTTPTimeoutSec: 1}, logger, staticToken(""))

	_, err := c.Magazines(context.Background())
	require.Error(t, err)

	var apiErr *types.APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not application errors")
}

func TestClientDonateAndProlongPaths(t *testing.T) {
	var paths []string
	c := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/funding/7/donate":
			var req types.DonateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.EqualValues(t, 50000, req.UserFundedMoney)
			envelope(w, 200, "ok", types.DonateData{FundingID: 7, UpdatedFundingTotal: 150000})
		case "/funding/7/prolongation":
			envelope(w, 200, "ok", types.ProlongData{FundingID: 7, DeadlineDate: "2026-10-31T00:00:00Z"})
		default:
			envelope(w, 404, "not found", nil)
		}
	}))

	donated, err := c.Donate(context.Background(), 7, 50000)
	require.NoError(t, err)
	assert.EqualValues(t, 150000, donated.UpdatedFundingTotal)

	prolonged, err := c.Prolong(context.Background(), 7, "2026-10-31T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-31T00:00:00Z", prolonged.DeadlineDate)

	assert.Equal(t, []string{"PATCH /funding/7/donate", "PATCH /funding/7/prolongation"}, paths)
}
