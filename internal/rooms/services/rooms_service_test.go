package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
)

type request struct {
	Method string
	Path   string
	Query  string
	Body   string
}

func newService(t *testing.T, routes map[string]interface{}) (*RoomService, func() []request) {
	var (
		mu   sync.Mutex
		seen []request
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, request{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(raw)})
		mu.Unlock()

		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.Error(w, `{"detail":"Bed not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	requests := func() []request {
		mu.Lock()
		defer mu.Unlock()
		return append([]request(nil), seen...)
	}
	return NewRoomService(apiclient.New(srv.URL, zap.NewNop()), zap.NewNop()), requests
}

var token = apiclient.StaticToken("nurse-token")

func TestRoomService_RoomsStatsCoverAllBeds(t *testing.T) {
	svc, _ := newService(t, map[string]interface{}{
		"GET /beds/": []models.Bed{
			{ID: 1, WardName: "A", Status: "available"},
			{ID: 2, WardName: "A", Status: "occupied"},
			{ID: 3, WardName: "B", Status: "maintenance"},
			{ID: 4, WardName: "B", Status: "available"},
		},
	})

	page := svc.Rooms(context.Background(), token, "", "occupied")
	assert.Empty(t, page.Failed)
	require.Len(t, page.Beds, 1)
	assert.Equal(t, 4, page.Stats.Total)
	assert.Equal(t, 2, page.Stats.Available)
	assert.Equal(t, 25.0, page.Stats.OccupancyRate)
	assert.NotEmpty(t, page.Tiles)
}

func TestRoomService_CreateBedDefaultsAvailable(t *testing.T) {
	svc, requests := newService(t, map[string]interface{}{
		"POST /beds/": models.Bed{ID: 9, Status: "available"},
	})

	_, err := svc.CreateBed(context.Background(), token, models.BedCreate{WardName: "C", BedNumber: "C-1"})
	require.NoError(t, err)

	seen := requests()
	require.Len(t, seen, 1)
	assert.Contains(t, seen[0].Body, `"status":"available"`)
}

func TestRoomService_AdmitSendsPatientQuery(t *testing.T) {
	svc, requests := newService(t, map[string]interface{}{
		"POST /beds/2/admit": models.Bed{ID: 2, Status: "occupied"},
	})

	bed, err := svc.Admit(context.Background(), token, 2, 11)
	require.NoError(t, err)
	assert.Equal(t, "occupied", bed.Status)
	assert.Equal(t, "patient_id=11", requests()[0].Query)
}

func TestRoomService_DischargeMissingBed(t *testing.T) {
	svc, _ := newService(t, map[string]interface{}{})

	_, err := svc.Discharge(context.Background(), token, 2)
	require.Error(t, err)
	assert.Equal(t, "Bed not found", apiclient.ErrorDetail(err, "x"))
}
