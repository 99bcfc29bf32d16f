package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
	"github.com/maitriparekhcs2848/GearGuard/pkg/utils"
)

type requestHandlerFixture struct {
	e         *echo.Echo
	store     *repositories.MemoryStore
	ctrl      *RequestController
	equipment string
}

func newRequestHandlerFixture(t *testing.T) *requestHandlerFixture {
	t.Helper()
	ctx := context.Background()

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())

	store := repositories.NewMemoryStore()
	teamID := uuid.NewString()
	equipmentID := uuid.NewString()
	require.NoError(t, store.CreateTeam(ctx, entities.Team{ID: teamID, Name: "Mechanics A", CreatedAt: time.Now()}))
	require.NoError(t, store.CreateEquipment(ctx, entities.Equipment{ID: equipmentID, Name: "CNC Mill", TeamID: teamID, CreatedAt: time.Now()}))

	svc := services.NewRequestService(store, store, zap.NewNop())
	return &requestHandlerFixture{
		e:         e,
		store:     store,
		ctrl:      NewRequestController(svc, zap.NewNop()),
		equipment: equipmentID,
	}
}

func (f *requestHandlerFixture) do(t *testing.T, handler echo.HandlerFunc, method, body string, paramID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	require.NoError(t, handler(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (f *requestHandlerFixture) createRequest(t *testing.T) string {
	t.Helper()
	rec := f.do(t, f.ctrl.CreateRequest, http.MethodPost, `{"equipment_id":"`+f.equipment+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)["body"].(map[string]any)
	return body["id"].(string)
}

func TestRequestController_Create(t *testing.T) {
	f := newRequestHandlerFixture(t)

	rec := f.do(t, f.ctrl.CreateRequest, http.MethodPost, `{"equipment_id":"`+f.equipment+`"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, constants.StatusNew, body["body"].(map[string]any)["status"])
}

func TestRequestController_Create_MissingEquipmentID(t *testing.T) {
	f := newRequestHandlerFixture(t)

	rec := f.do(t, f.ctrl.CreateRequest, http.MethodPost, `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestController_Create_UnknownEquipment(t *testing.T) {
	f := newRequestHandlerFixture(t)

	rec := f.do(t, f.ctrl.CreateRequest, http.MethodPost, `{"equipment_id":"`+uuid.NewString()+`"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "reference", decodeBody(t, rec)["kind"])
}

func TestRequestController_Create_ScrappedEquipment(t *testing.T) {
	f := newRequestHandlerFixture(t)
	scrapped := uuid.NewString()
	require.NoError(t, f.store.CreateEquipment(context.Background(), entities.Equipment{
		ID: scrapped, Name: "Old Crusher", IsScrap: true, CreatedAt: time.Now(),
	}))

	rec := f.do(t, f.ctrl.CreateRequest, http.MethodPost, `{"equipment_id":"`+scrapped+`"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_state", decodeBody(t, rec)["kind"])
}

func TestRequestController_TransitionStatus(t *testing.T) {
	f := newRequestHandlerFixture(t)
	id := f.createRequest(t)

	rec := f.do(t, f.ctrl.TransitionStatus, http.MethodPatch, `{"status":"In Progress"}`, id)
	assert.Equal(t, http.StatusOK, rec.Code)

	// New -> Scrap skips a stage and must come back as a conflict
	id2 := f.createRequest(t)
	rec = f.do(t, f.ctrl.TransitionStatus, http.MethodPatch, `{"status":"Scrap"}`, id2)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", decodeBody(t, rec)["kind"])
}

func TestRequestController_TransitionStatus_UnknownRequest(t *testing.T) {
	f := newRequestHandlerFixture(t)

	rec := f.do(t, f.ctrl.TransitionStatus, http.MethodPatch, `{"status":"In Progress"}`, uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeBody(t, rec)["kind"])
}

func TestRequestController_OverrideStatus(t *testing.T) {
	f := newRequestHandlerFixture(t)
	id := f.createRequest(t)

	rec := f.do(t, f.ctrl.OverrideStatus, http.MethodPatch, `{"status":"Repaired"}`, id)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, f.ctrl.OverrideStatus, http.MethodPatch, `{"status":"Done"}`, id)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestController_UpdateIgnoresStatusField(t *testing.T) {
	f := newRequestHandlerFixture(t)
	id := f.createRequest(t)

	// status is not part of the update payload, a smuggled value is dropped
	rec := f.do(t, f.ctrl.UpdateRequest, http.MethodPut, `{"status":"Repaired","priority":"High"}`, id)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)["body"].(map[string]any)
	assert.Equal(t, constants.StatusNew, body["status"])
	assert.Equal(t, constants.PriorityHigh, body["priority"])
}

func TestRequestController_MalformedBody(t *testing.T) {
	f := newRequestHandlerFixture(t)

	rec := f.do(t, f.ctrl.CreateRequest, http.MethodPost, `{not json`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
