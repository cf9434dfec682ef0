package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository/inmem"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router *gin.Engine
	store  *inmem.Store

	barber  models.Barber
	client  models.Client
	client2 models.Client
	haircut models.Service
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := inmem.New()
	settings := ucAppointment.Settings{
		Calendar: domain.DefaultCalendar(),
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC) },
	}
	log := zap.NewNop()

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(store, settings, nil, log),
		ucAppointment.NewUpdateAppointment(store, settings, nil, log),
		ucAppointment.NewChangeAppointmentStatus(store, nil, log),
		ucAppointment.NewDeleteAppointment(store, nil, log),
		ucAppointment.NewGetAppointment(store),
		ucAppointment.NewListAppointments(store, settings),
		ucAppointment.NewGetAvailability(store, settings, log),
		time.UTC,
	)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/appointments/availability", h.Availability)

	secured := api.Group("/appointments", middleware.AuthMiddleware(testSecret))
	secured.GET("", h.List)
	secured.POST("", h.Create)
	secured.GET("/:id", h.Get)
	secured.PUT("/:id", h.Update)
	secured.PATCH("/:id/status", h.ChangeStatus)
	secured.DELETE("/:id", h.Delete)

	return &testAPI{
		router:  r,
		store:   store,
		barber:  store.AddBarber(models.Barber{Name: "Rui"}),
		client:  store.AddClient(models.Client{Name: "Ana", Email: "ana@example.com"}),
		client2: store.AddClient(models.Client{Name: "Bruno", Email: "bruno@example.com"}),
		haircut: store.AddService(models.Service{Name: "Corte", DurationMin: 30, Price: 12, Active: true}),
	}
}

func (a *testAPI) do(t *testing.T, actor *domain.Actor, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		token, err := middleware.IssueToken(testSecret, *actor, time.Now())
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func ptrTo[T any](v T) *T { return &v }

func TestAvailability(t *testing.T) {
	api := newTestAPI(t)
	api.store.AddAppointment(models.Appointment{
		ClientID: api.client.ID, BarberID: api.barber.ID, ServiceID: api.haircut.ID,
		StartTime: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), Status: "pending",
	})

	path := "/api/appointments/availability?barber_id=1&date=2024-06-10&service_id=4"
	w := api.do(t, nil, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[struct {
		Slots []string `json:"slots"`
	}](t, w)
	assert.Len(t, body.Slots, 17)
	assert.Contains(t, body.Slots, "09:30")
	assert.NotContains(t, body.Slots, "10:00")
	assert.Contains(t, body.Slots, "10:30")

	t.Run("missing params", func(t *testing.T) {
		w := api.do(t, nil, http.MethodGet, "/api/appointments/availability?barber_id=1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing_params", decode[httperr.HTTPError](t, w).Code)
	})

	t.Run("unknown service", func(t *testing.T) {
		w := api.do(t, nil, http.MethodGet, "/api/appointments/availability?barber_id=1&date=2024-06-10&service_id=99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		w := api.do(t, nil, http.MethodGet, "/api/appointments/availability?barber_id=1&date=10-06-2024&service_id=4", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateAppointment(t *testing.T) {
	api := newTestAPI(t)
	staff := domain.Staff(api.barber.ID)

	payload := gin.H{
		"client_id":  api.client.ID,
		"barber_id":  api.barber.ID,
		"service_id": api.haircut.ID,
		"start_time": "2024-06-10 10:00",
		"notes":      "máquina 2",
	}

	w := api.do(t, &staff, http.MethodPost, "/api/appointments", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotZero(t, decode[struct {
		ID uint `json:"id"`
	}](t, w).ID)

	t.Run("conflict", func(t *testing.T) {
		w := api.do(t, &staff, http.MethodPost, "/api/appointments", payload)
		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decode[httperr.HTTPError](t, w)
		assert.Equal(t, "time_conflict", resp.Code)
		assert.Equal(t, "Barbeiro não disponível neste horário", resp.Message)
	})

	t.Run("validation", func(t *testing.T) {
		w := api.do(t, &staff, http.MethodPost, "/api/appointments", gin.H{
			"client_id": api.client.ID, "barber_id": api.barber.ID, "service_id": api.haircut.ID,
			"start_time": "2024-06-10 12:30",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "lunch_break", decode[httperr.HTTPError](t, w).Code)
	})

	t.Run("malformed start", func(t *testing.T) {
		w := api.do(t, &staff, http.MethodPost, "/api/appointments", gin.H{
			"client_id": api.client.ID, "barber_id": api.barber.ID, "service_id": api.haircut.ID,
			"start_time": "amanhã às 10",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_date_or_time", decode[httperr.HTTPError](t, w).Code)
	})

	t.Run("client for someone else", func(t *testing.T) {
		client := domain.Client(api.client2.ID)
		w := api.do(t, &client, http.MethodPost, "/api/appointments", gin.H{
			"client_id": api.client.ID, "barber_id": api.barber.ID, "service_id": api.haircut.ID,
			"start_time": "2024-06-10 15:00",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := api.do(t, nil, http.MethodPost, "/api/appointments", payload)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	assert.Equal(t, 1, api.store.Count())
}

func TestAppointmentLifecycle(t *testing.T) {
	api := newTestAPI(t)
	staff := domain.Staff(api.barber.ID)
	owner := domain.Client(api.client.ID)
	stranger := domain.Client(api.client2.ID)

	w := api.do(t, &owner, http.MethodPost, "/api/appointments", gin.H{
		"barber_id": api.barber.ID, "service_id": api.haircut.ID, "start_time": "2024-06-10T14:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[struct {
		ID uint `json:"id"`
	}](t, w).ID
	path := "/api/appointments/" + jsonID(id)

	// detail
	w = api.do(t, &owner, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[map[string]any](t, w)
	assert.Equal(t, "Corte", detail["service_name"])
	assert.Equal(t, "pending", detail["status"])

	assert.Equal(t, http.StatusNotFound, api.do(t, &stranger, http.MethodGet, path, nil).Code)

	// list: staff sees it, the other client does not
	w = api.do(t, &staff, http.MethodGet, "/api/appointments?date=2024-06-10&status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["total"])

	w = api.do(t, &stranger, http.MethodGet, "/api/appointments", nil)
	assert.Equal(t, float64(0), decode[map[string]any](t, w)["total"])

	// update
	w = api.do(t, &staff, http.MethodPut, path, gin.H{
		"barber_id": api.barber.ID, "service_id": api.haircut.ID,
		"start_time": "2024-06-10 16:00", "status": "confirmed", "notes": ptrTo("janela"),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// status
	w = api.do(t, &owner, http.MethodPatch, path+"/status", gin.H{"status": "completed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, &staff, http.MethodPatch, path+"/status", gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decode[map[string]any](t, w)["status"])

	w = api.do(t, &staff, http.MethodPatch, path+"/status", gin.H{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_state", decode[httperr.HTTPError](t, w).Code)

	// delete
	w = api.do(t, &staff, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["affected"])

	assert.Equal(t, http.StatusNotFound, api.do(t, &staff, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, &staff, http.MethodDelete, "/api/appointments/abc", nil).Code)
}

func jsonID(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
