package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	staffModels "github.com/c14220110/clinic-portal/internal/staff/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type call struct {
	Method string
	Path   string
	Body   string
}

// backend REST palsu: route "METHOD /path" -> (status, body).
type backend struct {
	t      *testing.T
	mu     sync.Mutex
	calls  []call
	routes map[string]func() (int, interface{})
}

func newBackend(t *testing.T) (*backend, *apiclient.Client) {
	b := &backend{t: t, routes: map[string]func() (int, interface{}){}}
	srv := httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(srv.Close)
	return b, apiclient.New(srv.URL, zap.NewNop())
}

func (b *backend) on(route string, status int, body interface{}) {
	b.routes[route] = func() (int, interface{}) { return status, body }
}

func (b *backend) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.calls = append(b.calls, call{Method: r.Method, Path: r.URL.Path, Body: string(raw)})
	b.mu.Unlock()

	h, ok := b.routes[r.Method+" "+r.URL.Path]
	if !ok {
		http.Error(w, `{"detail":"Not Found"}`, http.StatusNotFound)
		return
	}
	status, body := h()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (b *backend) called(method, path string) []call {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []call
	for _, c := range b.calls {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

var token = apiclient.StaticToken("staff-token")

func TestStaffService_DashboardPartialFailure(t *testing.T) {
	b, api := newBackend(t)
	b.on("GET /dashboard/stats", http.StatusInternalServerError, map[string]string{"detail": "boom"})
	b.on("GET /appointments/my-appointments", http.StatusOK, []models.Appointment{{ID: 7, Status: "confirmed"}})
	b.on("GET /users/me", http.StatusOK, models.User{ID: 1, Role: "doctor", FullName: "Dr. Rina"})

	page := NewStaffService(api, zap.NewNop()).Dashboard(context.Background(), token)
	assert.Equal(t, []string{"stats"}, page.Failed)
	assert.Nil(t, page.Stats)
	assert.Empty(t, page.Tiles)
	require.Len(t, page.Appointments, 1)
	require.NotNil(t, page.Me)
	assert.Equal(t, "Dr. Rina", page.Me.FullName)
}

func TestStaffService_PatientsByRole(t *testing.T) {
	b, api := newBackend(t)
	mine := []models.PatientSummary{{ID: 1, Name: "Budi", Status: "Active"}, {ID: 2, Name: "Siti", Status: "Follow-up"}}
	b.on("GET /users/patients/my", http.StatusOK, mine)
	b.on("GET /dashboard/patients", http.StatusOK, append(mine, models.PatientSummary{ID: 3, Name: "Andi", Status: "Active"}))
	svc := NewStaffService(api, zap.NewNop())

	page := svc.Patients(context.Background(), token, models.User{Role: "Doctor"}, "", "")
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.Active)
	assert.Equal(t, 1, page.FollowUp)
	assert.Empty(t, b.called(http.MethodGet, "/dashboard/patients"))

	page = svc.Patients(context.Background(), token, models.User{Role: "nurse"}, "", "active")
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Patients, 2)
	assert.Equal(t, 2, page.Active)
}

func TestStaffService_DoctorUpcoming(t *testing.T) {
	b, api := newBackend(t)
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	b.on("GET /appointments/my-appointments", http.StatusOK, []models.Appointment{
		{ID: 1, AppointmentTime: now.Add(3 * time.Hour)},
		{ID: 2, AppointmentTime: now.Add(-time.Hour)},
		{ID: 3, AppointmentTime: now.Add(time.Hour)},
	})
	svc := NewStaffService(api, zap.NewNop())
	svc.Now = func() time.Time { return now }

	page := svc.Doctor(context.Background(), token, "")
	require.Len(t, page.Upcoming, 2)
	assert.Equal(t, 3, page.Upcoming[0].ID)
	assert.Equal(t, 1, page.Upcoming[1].ID)
}

func TestStaffService_RespondReferral(t *testing.T) {
	b, api := newBackend(t)
	b.on("POST /referrals/5/accept", http.StatusOK, models.Referral{ID: 5, Status: "accepted"})
	b.on("POST /referrals/6/reject", http.StatusBadRequest, map[string]string{"detail": "Referral already processed"})
	svc := NewStaffService(api, zap.NewNop())

	ref, err := svc.RespondReferral(context.Background(), token, 5, true)
	require.NoError(t, err)
	assert.Equal(t, "accepted", ref.Status)

	_, err = svc.RespondReferral(context.Background(), token, 6, false)
	require.Error(t, err)
	assert.Equal(t, "Referral already processed", apiclient.ErrorDetail(err, "x"))
}

func TestStaffService_CreateReferralDefaultsUrgency(t *testing.T) {
	b, api := newBackend(t)
	b.on("POST /referrals/", http.StatusOK, models.Referral{ID: 1})

	_, err := NewStaffService(api, zap.NewNop()).CreateReferral(context.Background(), token,
		models.ReferralCreate{ToDoctorID: 2, PatientID: 3, Reason: "cardiology"})
	require.NoError(t, err)

	calls := b.called(http.MethodPost, "/referrals/")
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Body, `"urgency":"routine"`)
}

func TestConsultationService_Complete(t *testing.T) {
	b, api := newBackend(t)
	b.on("GET /appointments/42", http.StatusOK, models.Appointment{ID: 42, PatientID: 9, DoctorID: 3})
	b.on("GET /users/me", http.StatusOK, models.User{ID: 1, Role: "doctor", DoctorProfile: &models.DoctorInfo{ID: 4}})
	b.on("POST /consultations/", http.StatusOK, models.Consultation{ID: 100, AppointmentID: 42})
	b.on("POST /prescriptions/", http.StatusOK, models.Prescription{ID: 1, Medication: "Amoxicillin"})

	result, err := NewConsultationService(api, zap.NewNop()).Complete(context.Background(), token, 42, staffModels.ConsultationRequest{
		Symptoms:  "fever",
		Diagnosis: "flu",
		Prescriptions: []staffModels.PrescriptionItem{
			{Medication: "Amoxicillin", Dosage: "500mg", Frequency: "3x", Duration: "5 days"},
			{Medication: "Paracetamol", Dosage: "500mg", Frequency: "3x", Duration: "3 days"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Consultation.ID)
	assert.Len(t, result.Prescriptions, 2)
	assert.Equal(t, "/dashboard/schedule/appointments", result.Redirect)

	consult := b.called(http.MethodPost, "/consultations/")
	require.Len(t, consult, 1)
	assert.Contains(t, consult[0].Body, `"doctor_id":4`)
	assert.Contains(t, consult[0].Body, `"patient_id":9`)

	rx := b.called(http.MethodPost, "/prescriptions/")
	require.Len(t, rx, 2)
	assert.Contains(t, rx[0].Body, `"consultation_id":100`)
}

func TestConsultationService_CompleteStopsOnPrescriptionFailure(t *testing.T) {
	b, api := newBackend(t)
	b.on("GET /appointments/42", http.StatusOK, models.Appointment{ID: 42, PatientID: 9, DoctorID: 3})
	b.on("GET /users/me", http.StatusOK, models.User{ID: 1, Role: "doctor"})
	b.on("POST /consultations/", http.StatusOK, models.Consultation{ID: 100})
	b.on("POST /prescriptions/", http.StatusUnprocessableEntity, map[string]string{"detail": "Medication out of stock"})

	result, err := NewConsultationService(api, zap.NewNop()).Complete(context.Background(), token, 42, staffModels.ConsultationRequest{
		Symptoms:  "fever",
		Diagnosis: "flu",
		Prescriptions: []staffModels.PrescriptionItem{
			{Medication: "A", Dosage: "1", Frequency: "1", Duration: "1"},
			{Medication: "B", Dosage: "1", Frequency: "1", Duration: "1"},
		},
	})
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusUnprocessableEntity))
	require.NotNil(t, result)
	assert.Empty(t, result.Prescriptions)
	assert.Len(t, b.called(http.MethodPost, "/prescriptions/"), 1)

	consult := b.called(http.MethodPost, "/consultations/")
	require.Len(t, consult, 1)
	assert.Contains(t, consult[0].Body, `"doctor_id":3`)
}

func TestConsultationService_CompleteMissingAppointment(t *testing.T) {
	b, api := newBackend(t)
	b.on("GET /appointments/42", http.StatusOK, models.Appointment{ID: 42})
	b.on("GET /users/me", http.StatusOK, models.User{ID: 1, Role: "doctor"})

	_, err := NewConsultationService(api, zap.NewNop()).Complete(context.Background(), token, 42,
		staffModels.ConsultationRequest{Symptoms: "a", Diagnosis: "b"})
	assert.ErrorIs(t, err, ErrAppointmentUnavailable)
	assert.Empty(t, b.called(http.MethodPost, "/consultations/"))
}

func TestScheduleService_Schedule(t *testing.T) {
	b, api := newBackend(t)
	when := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	b.on("GET /appointments/my-appointments", http.StatusOK, []models.Appointment{
		{ID: 1, Status: "pending", AppointmentTime: when},
		{ID: 2, Status: "confirmed", AppointmentTime: when},
	})
	b.on("GET /dashboard/patients", http.StatusOK, []models.PatientSummary{{ID: 1, Name: "Budi"}})
	svc := NewScheduleService(api, zap.NewNop())
	svc.Location = time.UTC

	page := svc.Schedule(context.Background(), token, staffModels.ScheduleFilter{Status: "pending", Date: "2026-05-04"})
	assert.Empty(t, page.Failed)
	require.Len(t, page.Appointments, 1)
	assert.Equal(t, 1, page.Appointments[0].ID)
	assert.Equal(t, map[string]int{"pending": 1, "confirmed": 1}, page.Counts)
	assert.Len(t, page.Patients, 1)
}

func TestAdminService_CreateUserKeepsRole(t *testing.T) {
	b, api := newBackend(t)
	b.on("POST /users/", http.StatusOK, models.User{ID: 8, Role: "nurse"})

	user, err := NewAdminService(api, zap.NewNop()).CreateUser(context.Background(), token, staffModels.CreateUserRequest{
		FullName: "Nina", Email: "nina@clinic.test", Password: "secret1", Role: "nurse",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, user.ID)

	calls := b.called(http.MethodPost, "/users/")
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Body, `"role":"nurse"`)
}

func TestLabService_RecordDefaultsCompleted(t *testing.T) {
	b, api := newBackend(t)
	b.on("PUT /labs/3", http.StatusOK, models.LabResult{ID: 3, Status: "completed"})

	_, err := NewLabService(api, zap.NewNop()).Record(context.Background(), token, 3, models.LabResultUpdate{Result: "5.4"})
	require.NoError(t, err)

	calls := b.called(http.MethodPut, "/labs/3")
	require.Len(t, calls, 1)
	assert.True(t, strings.Contains(calls[0].Body, `"status":"completed"`))
}

func TestConsultationService_DetailWithoutExistingConsultation(t *testing.T) {
	b, api := newBackend(t)
	b.on("GET /appointments/5", http.StatusOK, models.Appointment{ID: 5, PatientID: 2})
	b.on("GET /pharmacy/inventory", http.StatusOK, []models.Medicine{{ID: 1, Name: "Amoxicillin"}})
	b.on("GET /users/me", http.StatusOK, models.User{ID: 1, Role: "doctor"})

	page := NewConsultationService(api, zap.NewNop()).Detail(context.Background(), token, 5)
	assert.Empty(t, page.Failed)
	assert.Nil(t, page.Existing)
	require.NotNil(t, page.Appointment)
	assert.Len(t, page.Inventory, 1)
}

func TestConsultationService_DetailExistingConsultation(t *testing.T) {
	b, api := newBackend(t)
	b.on("GET /appointments/5", http.StatusOK, models.Appointment{ID: 5})
	b.on("GET /pharmacy/inventory", http.StatusOK, []models.Medicine{})
	b.on("GET /users/me", http.StatusOK, models.User{ID: 1, Role: "doctor"})
	b.on("GET /consultations/appointment/5", http.StatusOK, models.Consultation{ID: 9, AppointmentID: 5})

	page := NewConsultationService(api, zap.NewNop()).Detail(context.Background(), token, 5)
	assert.Empty(t, page.Failed)
	require.NotNil(t, page.Existing)
	assert.Equal(t, 9, page.Existing.ID)
}

func TestStaffService_CreateRecordDefaultsVisitDate(t *testing.T) {
	b, api := newBackend(t)
	b.on("POST /medical-records/", http.StatusCreated, models.MedicalRecord{ID: 4, PatientID: 2})

	svc := NewStaffService(api, zap.NewNop())
	svc.Now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	record, err := svc.CreateRecord(context.Background(), token, models.MedicalRecordCreate{
		PatientID: 2, DoctorID: 1, Diagnosis: "flu", Symptoms: "fever", Treatment: "rest",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, record.ID)

	calls := b.called(http.MethodPost, "/medical-records/")
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Body, `"visit_date":"2024-03-01T09:00:00Z"`)
}

func TestLabService_OrderDefaultsPending(t *testing.T) {
	b, api := newBackend(t)
	b.on("POST /labs/", http.StatusCreated, models.LabResult{ID: 8, Status: "pending"})

	_, err := NewLabService(api, zap.NewNop()).Order(context.Background(), token,
		models.LabResultCreate{PatientID: 2, TestName: "CBC"})
	require.NoError(t, err)

	calls := b.called(http.MethodPost, "/labs/")
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Body, `"status":"pending"`)
}
