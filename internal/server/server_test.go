package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Eursukkul/eventclub/internal/clock"
	"github.com/Eursukkul/eventclub/internal/notification"
	"github.com/Eursukkul/eventclub/internal/repository"
	"github.com/Eursukkul/eventclub/internal/scheduler"
	"github.com/Eursukkul/eventclub/internal/service"
	"github.com/Eursukkul/eventclub/pkg/database"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification.Message
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, m notification.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, m)
	return n.err
}

func (n *fakeNotifier) subjects() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.sent))
	for i, m := range n.sent {
		out[i] = m.Subject
	}
	return out
}

type testApp struct {
	e        *echo.Echo
	clock    *clock.Fake
	notifier *fakeNotifier
	timer    *scheduler.Timer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewSQLiteDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	logger := zap.NewNop()
	fc := clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	notifier := &fakeNotifier{}
	renderer, err := notification.NewRenderer("http://club.test", "Fee collected.", time.Hour)
	require.NoError(t, err)
	dispatcher := notification.NewDispatcher(notifier, renderer, logger)
	timer := scheduler.NewTimer(fc, dispatcher.SendReminder, logger)

	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)
	annRepo := repository.NewAnnouncementRepository(db)

	svcs := Services{
		Events: service.NewEventService(eventRepo, nil, logger),
		Registrations: service.NewRegistrationService(service.RegistrationServiceDeps{
			Registrations: regRepo,
			Events:        eventRepo,
			Notifier:      dispatcher,
			Scheduler:     timer,
			Clock:         fc,
			Logger:        logger,
			ReminderDelay: time.Hour,
		}),
		Announcements: service.NewAnnouncementService(annRepo, eventRepo, fc, nil, logger),
	}

	return &testApp{e: New(svcs, logger), clock: fc, notifier: notifier, timer: timer}
}

func (a *testApp) do(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec.Code, rec.Body.Bytes()
}

func (a *testApp) createEvent(t *testing.T, title, date string) uint {
	t.Helper()
	code, body := a.do(t, http.MethodPost, "/api/events",
		fmt.Sprintf(`{"title":%q,"description":"A full day of building things.","date":%q,"location":"Main Hall"}`, title, date))
	require.Equal(t, http.StatusCreated, code, string(body))

	var resp struct{ ID uint }
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.ID
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	code, body := app.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok","service":"eventclub"}`, string(body))
}

func TestHackathonScenario(t *testing.T) {
	app := newTestApp(t)
	eventID := app.createEvent(t, "Hackathon", "2026-04-10T09:00:00Z")

	code, body := app.do(t, http.MethodPost, "/api/registrations",
		fmt.Sprintf(`{"eventId":%d,"name":"Jane Doe","email":"jane@x.com"}`, eventID))
	require.Equal(t, http.StatusCreated, code, string(body))

	var reg map[string]any
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "pending", reg["status"])
	assert.Equal(t, "2026-03-01T12:00:00Z", reg["createdAt"])
	regID := uint(reg["id"].(float64))

	code, body = app.do(t, http.MethodPatch, fmt.Sprintf("/api/registrations/%d/status", regID), `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, code, string(body))
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "confirmed", reg["status"])

	code, body = app.do(t, http.MethodGet, "/api/registrations/status?email=jane@x.com", "")
	require.Equal(t, http.StatusOK, code)

	var statuses []map[string]any
	require.NoError(t, json.Unmarshal(body, &statuses))
	require.Len(t, statuses, 1)
	assert.Equal(t, "confirmed", statuses[0]["status"])
	assert.Equal(t, "Hackathon", statuses[0]["event"].(map[string]any)["title"])
}

func TestCreateRegistration_MissingEmail(t *testing.T) {
	app := newTestApp(t)
	eventID := app.createEvent(t, "Hackathon", "2026-04-10T09:00:00Z")

	code, body := app.do(t, http.MethodPost, "/api/registrations", fmt.Sprintf(`{"eventId":%d,"name":"Jane Doe"}`, eventID))

	assert.Equal(t, http.StatusBadRequest, code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "email", resp["field"])
	assert.NotEmpty(t, resp["message"])
	assert.Empty(t, app.notifier.subjects())
}

func TestCreateRegistration_UnknownEvent(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodPost, "/api/registrations", `{"eventId":999,"name":"Jane Doe","email":"jane@x.com"}`)

	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"message":"event not found"}`, string(body))
}

func TestStatusCheck_MissingEmail(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodGet, "/api/registrations/status", "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), `"field":"email"`)
}

func TestUpdateStatus_MissingRegistration(t *testing.T) {
	app := newTestApp(t)

	code, _ := app.do(t, http.MethodPatch, "/api/registrations/404/status", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusNotFound, code)
}

func TestRegistration_NotificationsAndReminder(t *testing.T) {
	app := newTestApp(t)
	eventID := app.createEvent(t, "Hackathon", "2026-04-10T09:00:00Z")

	code, _ := app.do(t, http.MethodPost, "/api/registrations",
		fmt.Sprintf(`{"eventId":%d,"name":"Jane Doe","email":"jane@x.com"}`, eventID))
	require.Equal(t, http.StatusCreated, code)

	assert.Equal(t, []string{"Registration Confirmed - Hackathon"}, app.notifier.subjects())
	assert.Equal(t, int64(1), app.timer.Pending())

	app.clock.Advance(59 * time.Minute)
	assert.Len(t, app.notifier.subjects(), 1)

	app.clock.Advance(time.Minute)
	assert.Equal(t, []string{
		"Registration Confirmed - Hackathon",
		"Reminder: Hackathon is coming up",
	}, app.notifier.subjects())

	app.clock.Advance(24 * time.Hour)
	assert.Len(t, app.notifier.subjects(), 2)
}

func TestRegistration_NotifierFailureStillCreated(t *testing.T) {
	app := newTestApp(t)
	app.notifier.err = errors.New("smtp unavailable")
	eventID := app.createEvent(t, "Hackathon", "2026-04-10T09:00:00Z")

	code, body := app.do(t, http.MethodPost, "/api/registrations",
		fmt.Sprintf(`{"eventId":%d,"name":"Jane Doe","email":"jane@x.com"}`, eventID))

	require.Equal(t, http.StatusCreated, code)
	var reg map[string]any
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "Jane Doe", reg["name"])
	assert.Equal(t, "pending", reg["status"])
}

func TestEvents_OrderedByDateDesc(t *testing.T) {
	app := newTestApp(t)
	app.createEvent(t, "Spring", "2026-04-01T09:00:00Z")
	app.createEvent(t, "Summer", "2026-07-01T09:00:00Z")
	app.createEvent(t, "Winter", "2026-01-01T09:00:00Z")

	code, body := app.do(t, http.MethodGet, "/api/events", "")
	require.Equal(t, http.StatusOK, code)

	var events []struct{ Title string }
	require.NoError(t, json.Unmarshal(body, &events))
	require.Len(t, events, 3)
	assert.Equal(t, "Summer", events[0].Title)
	assert.Equal(t, "Spring", events[1].Title)
	assert.Equal(t, "Winter", events[2].Title)
}

func TestDeleteEvent_CascadesAndDetaches(t *testing.T) {
	app := newTestApp(t)
	eventID := app.createEvent(t, "Hackathon", "2026-04-10T09:00:00Z")

	code, _ := app.do(t, http.MethodPost, "/api/registrations",
		fmt.Sprintf(`{"eventId":%d,"name":"Jane Doe","email":"jane@x.com"}`, eventID))
	require.Equal(t, http.StatusCreated, code)
	code, _ = app.do(t, http.MethodPost, "/api/announcements",
		fmt.Sprintf(`{"eventId":%d,"title":"Room change","message":"Now in Hall B"}`, eventID))
	require.Equal(t, http.StatusCreated, code)

	code, _ = app.do(t, http.MethodDelete, fmt.Sprintf("/api/events/%d", eventID), "")
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = app.do(t, http.MethodGet, fmt.Sprintf("/api/events/%d", eventID), "")
	assert.Equal(t, http.StatusNotFound, code)

	_, body := app.do(t, http.MethodGet, "/api/registrations/status?email=jane@x.com", "")
	assert.JSONEq(t, `[]`, string(body))

	_, body = app.do(t, http.MethodGet, "/api/announcements", "")
	var feed []map[string]any
	require.NoError(t, json.Unmarshal(body, &feed))
	require.Len(t, feed, 1)
	assert.Nil(t, feed[0]["eventId"])
	assert.Nil(t, feed[0]["event"])

	code, _ = app.do(t, http.MethodDelete, fmt.Sprintf("/api/events/%d", eventID), "")
	assert.Equal(t, http.StatusNoContent, code)
}

func TestAnnouncements_EmbedEvent(t *testing.T) {
	app := newTestApp(t)
	eventID := app.createEvent(t, "Hackathon", "2026-04-10T09:00:00Z")

	code, body := app.do(t, http.MethodPost, "/api/announcements",
		fmt.Sprintf(`{"eventId":%d,"title":"Room change","message":"Now in Hall B"}`, eventID))
	require.Equal(t, http.StatusCreated, code, string(body))

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, float64(eventID), created["eventId"])
	assert.Equal(t, "2026-03-01T12:00:00Z", created["postedAt"])
	require.IsType(t, map[string]any{}, created["event"])
	assert.Equal(t, "Hackathon", created["event"].(map[string]any)["title"])

	code, _ = app.do(t, http.MethodPost, "/api/announcements", `{"title":"Welcome","message":"Doors open at 9"}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = app.do(t, http.MethodGet, "/api/announcements", "")
	require.Equal(t, http.StatusOK, code)

	var feed []map[string]any
	require.NoError(t, json.Unmarshal(body, &feed))
	require.Len(t, feed, 2)

	// Same postedAt on the fake clock, so ties fall back to id desc.
	assert.Equal(t, "Welcome", feed[0]["title"])
	assert.Nil(t, feed[0]["event"])

	assert.Equal(t, "Room change", feed[1]["title"])
	event, ok := feed[1]["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hackathon", event["title"])
	assert.Equal(t, float64(eventID), event["id"])
}

func TestAnnouncements_UnknownEvent(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodPost, "/api/announcements", `{"eventId":999,"title":"Room change","message":"Now in Hall B"}`)

	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"message":"event not found"}`, string(body))
}
