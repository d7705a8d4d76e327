package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return echo.New().NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestPage_IncludesLayout(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Page(c, "Dashboard", map[string]string{"area": "staff"}, []int{1}))

	body := decodeResponse(t, rec)
	assert.Equal(t, float64(http.StatusOK), body["status"])
	assert.Equal(t, "Dashboard", body["message"])
	assert.Equal(t, map[string]interface{}{"area": "staff"}, body["layout"])
	assert.Equal(t, []interface{}{1.0}, body["data"])
}

func TestJSON_OmitsLayout(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, BadRequest(c, "Invalid request body"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	_, hasLayout := body["layout"]
	assert.False(t, hasLayout)
	assert.Nil(t, body["data"])
}

func TestActionFailed(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"backend 4xx detail", &apiclient.APIError{StatusCode: 400, Detail: "Insufficient wallet balance"}, 400, "Insufficient wallet balance"},
		{"backend 4xx without detail", &apiclient.APIError{StatusCode: 404}, 404, "Payment failed"},
		{"backend 5xx", &apiclient.APIError{StatusCode: 500, Detail: "db down"}, http.StatusBadGateway, "db down"},
		{"transport error", errors.New("connection refused"), http.StatusBadGateway, "Payment failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, ActionFailed(c, tc.err, "Payment failed"))
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, decodeResponse(t, rec)["message"])
		})
	}
}
