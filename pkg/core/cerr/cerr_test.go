package cerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/momeni/parkmock/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsAsThroughWrapping(t *testing.T) {
	base := errors.New("plate is required")
	err := fmt.Errorf("paying ticket: %w", cerr.BadRequest(base).WithCode("MISSING_DATA"))

	var ce *cerr.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, http.StatusBadRequest, ce.HTTPStatusCode)
	assert.Equal(t, "MISSING_DATA", ce.Code)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "[400 MISSING_DATA] plate is required", ce.Error())
	assert.Equal(t, "[502] x", cerr.BadGateway(errors.New("x")).Error())
}

func TestDetailsAreNotPartOfMessage(t *testing.T) {
	ce := cerr.Internal(errors.New("Invalid phone number")).
		WithCode("INVALID_PHONE").
		WithDetails("The 'To' number +1 is not a valid phone number.")
	assert.Equal(t, "[500 INVALID_PHONE] Invalid phone number", ce.Error())
	assert.Equal(t, "The 'To' number +1 is not a valid phone number.", ce.Details)
}
