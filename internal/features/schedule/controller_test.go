package schedule

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrms/internal/config"
	"go-hrms/pkg/tabular"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestApp(t *testing.T) (*fiber.App, *fixture) {
	t.Helper()
	f := newFixture(t)
	app := fiber.New()
	NewScheduleApi(NewScheduleController(f.svc), &config.Config{SkipAuth: true}).Setup(app)
	return app, f
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestScheduleRoutes(t *testing.T) {
	app, f := newTestApp(t)

	body := `{"frequency":"Weekly","startDate":"2025-03-01","hours":8,"minutes":"15","format":"Excel","to":["hr@example.com"],"subject":"Weekly"}`
	resp, err := app.Test(jsonRequest("POST", "/api/schedules/report/"+f.reportID, body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var created struct {
		ScheduleReport ScheduleReport `json:"scheduleReport"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, ClockValue("8"), created.ScheduleReport.Hours)
	assert.Equal(t, time.Date(2025, 3, 15, 8, 15, 0, 0, ist).UnixMilli(), created.ScheduleReport.NextRunDate)
	id := created.ScheduleReport.ID.Hex()

	resp, err = app.Test(jsonRequest("POST", "/api/schedules/report/"+primitive.NewObjectID().Hex(), body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(jsonRequest("PATCH", "/api/schedules/"+id, `{"subject":"Renamed"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("PATCH", "/api/schedules/"+id, `{"minutes":"75"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/schedules?page=1&limit=5", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ = io.ReadAll(resp.Body)
	var listed ListResult
	require.NoError(t, json.Unmarshal(raw, &listed))
	require.Len(t, listed.Reports, 1)
	assert.Equal(t, "Renamed", listed.Reports[0].Subject)
	assert.Equal(t, "15 Mar 2025, 08:15 am", listed.Reports[0].NextRunDate)

	f.snapshots.rows = []tabular.Row{{{Key: "name", Value: "Asha Rao"}}}
	resp, err = app.Test(httptest.NewRequest("GET", "/api/schedules/"+id+"/render", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, tabular.FormatExcel.ContentType(), resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "report_"+f.reportID+".xlsx")

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/schedules/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/schedules/"+id+"/render", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/schedules?limit=-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
