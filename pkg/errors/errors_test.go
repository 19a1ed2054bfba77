package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigErrorMatching(t *testing.T) {
	err := NewConfigError("decimal_format", "required parameter missing")

	assert.True(t, IsConfig(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "decimal_format")
}

func TestUnsupportedServiceErrorMatchesBothSentinels(t *testing.T) {
	err := NewUnsupportedServiceError("wikidata")

	assert.True(t, IsUnsupportedService(err))
	assert.True(t, IsConfig(err))
	assert.Contains(t, err.Error(), "wikidata")
}

func TestResponseError(t *testing.T) {
	err := NewResponseError("geonames", "r0$City", "unknown row")

	assert.True(t, IsMalformedResponse(err))
	assert.Contains(t, err.Error(), "geonames")
	assert.Contains(t, err.Error(), "r0$City")
}

func TestAPIErrorStatusMapping(t *testing.T) {
	err := NewAPIError("api/extenders", 500, "boom")
	assert.True(t, IsServiceUnavailable(err))
	assert.False(t, IsRateLimited(err))

	limited := NewAPIError("api/extenders", 429, "slow down")
	assert.True(t, IsRateLimited(limited))
	assert.True(t, IsServiceUnavailable(limited))
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapAPI("api/dataset", 0, cause)

	assert.ErrorIs(t, err, cause)
}

func TestValidationErrorIsConfig(t *testing.T) {
	err := NewValidationError("column", "Missing", "column not found")
	assert.True(t, IsConfig(err))
}

func TestNotFound(t *testing.T) {
	err := NewNotFoundError("table", "tab_1")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "tab_1")
}
