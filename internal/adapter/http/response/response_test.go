package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestOK(t *testing.T) {
	_, c, rec := setupEcho()

	payload := struct {
		Count int `json:"count"`
	}{Count: 3}
	require.NoError(t, OK(c, payload))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestCreated(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, Created(c, map[string]string{"id": "abc"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBadRequest(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, BadRequest(c, "Invalid input"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeInvalidRequest, result.Code)
	assert.Equal(t, "Invalid input", result.Message)
}

func TestInvalidRequestBody(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, InvalidRequestBody(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeInvalidRequest, result.Code)
	assert.Equal(t, MsgInvalidRequestBody, result.Message)
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	details := map[string]string{
		"origin":        "origin is required",
		"departureDate": "departureDate must be in YYYY-MM-DD format",
	}
	require.NoError(t, ValidationError(c, details))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, "origin is required", result.Details["origin"])
}

func TestValidationErrorWithMessage(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, ValidationErrorWithMessage(c, "Custom validation message"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, "Custom validation message", result.Message)
}

func TestUpstreamRejected(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, UpstreamRejected(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeUpstreamRejected, result.Code)
	assert.Equal(t, MsgUpstreamRejected, result.Message)
}

func TestNotFound(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, NotFound(c, "The requested location is not supported"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeNotFound, result.Code)
}

func TestServiceUnavailable(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, ServiceUnavailable(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeServiceUnavailable, result.Code)
	assert.Equal(t, MsgServiceUnavailable, result.Message)
}

func TestGatewayTimeout(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, GatewayTimeout(c))
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeTimeout, result.Code)
	assert.Equal(t, MsgTimeout, result.Message)
}

func TestRequestCancelled(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, RequestCancelled(c))
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeTimeout, result.Code)
	assert.Equal(t, MsgRequestCancelled, result.Message)
}

func TestInternalServerError(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, InternalServerError(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeInternalError, result.Code)
	assert.Equal(t, MsgInternalError, result.Message)
}
