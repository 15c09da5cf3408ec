package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionSetIsClosed(t *testing.T) {
	assert.Len(t, Regions, 7)
	for _, r := range Regions {
		assert.True(t, r.Valid(), r)
		assert.NotEmpty(t, r.Label())
	}
	assert.False(t, Region("BUSAN").Valid())
	assert.False(t, Region("").Valid())
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("jeju")
	require.NoError(t, err)
	assert.Equal(t, RegionJeju, r)

	r, err = ParseRegion(" Incheon_Gyeonggi ")
	require.NoError(t, err)
	assert.Equal(t, RegionIncheonGyeonggi, r)

	_, err = ParseRegion("busan")
	assert.Error(t, err)
}

func TestEnvelopeOK(t *testing.T) {
	assert.True(t, Envelope[any]{StatusCode: 200}.OK())
	assert.True(t, Envelope[any]{StatusCode: 201}.OK())
	assert.False(t, Envelope[any]{StatusCode: 400}.OK())
	assert.False(t, Envelope[any]{StatusCode: 401}.OK())
}

func TestAPIErrorUserMessage(t *testing.T) {
	withMessage := &APIError{StatusCode: 400, Message: "title too long"}
	assert.Equal(t, "title too long", withMessage.UserMessage())
	assert.Contains(t, withMessage.Error(), "400")

	blank := &APIError{StatusCode: 500}
	assert.NotEmpty(t, blank.UserMessage())
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{StatusCode: 401}))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: 403}))
	assert.False(t, IsUnauthorized(ErrNotLoggedIn))
	assert.False(t, IsUnauthorized(nil))
}
