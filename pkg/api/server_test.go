package api

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroomlab/greenroom/pkg/assign"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/matchmaking"
	"github.com/greenroomlab/greenroom/pkg/models"
	"github.com/greenroomlab/greenroom/pkg/services"
	testdb "github.com/greenroomlab/greenroom/test/database"
	"github.com/labstack/echo/v4"
)

// newTestServer wires the full stack against a test database and
// returns the echo router.
func newTestServer(t *testing.T) (*echo.Echo, *services.ConfigService) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	bus := events.NewBus()
	t.Cleanup(bus.Stop)

	configs := services.NewConfigService(dbClient.Client)
	idempotency := services.NewIdempotencyService(dbClient.Client)
	assigner := assign.NewAssigner()
	sessions := services.NewSessionService(dbClient.Client, bus, configs, idempotency, assigner, false)
	chats := services.NewChatService(dbClient.Client, bus, sessions)
	groups := services.NewGroupService(dbClient.Client)
	bus.SetGroupResolver(sessions)

	scheduler := matchmaking.NewScheduler(sessions, groups, assigner, bus)
	t.Cleanup(scheduler.Stop)
	bus.SetDisconnectHandler(scheduler.HandleDisconnect)

	server := NewServer(dbClient, sessions, chats, configs, scheduler, bus)
	return server.Router(nil), configs
}

func seedConfig(t *testing.T, configs *services.ConfigService, configID string) {
	t.Helper()
	graph := models.Graph{
		InitialPageID: "intro",
		Pages: map[string]models.Page{
			"intro": {ID: "intro"},
			"done":  {ID: "done", End: true},
		},
	}
	_, err := configs.Create(context.Background(), configID, "researcher", false, graph)
	require.NoError(t, err)
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("{}")
	} else {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	e, configs := newTestServer(t)
	seedConfig(t, configs, "web-study")

	rec, body := doJSON(t, e, http.MethodPost, "/sessions/start", `{"configId":"web-study"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "created", body["status"])
	sid := body["sessionId"].(string)
	require.NotEmpty(t, sid)
	assert.Equal(t, "intro", body["currentPageId"])

	rec, body = doJSON(t, e, http.MethodGet, "/sessions/"+sid, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "web-study", body["configId"])

	rec, body = doJSON(t, e, http.MethodPost, "/sessions/"+sid+"/advance",
		`{"target":"done","idempotencyKey":"adv-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", body["currentPageId"])
	assert.NotNil(t, body["endedAt"])

	// Replay is flagged, not re-applied.
	rec, body = doJSON(t, e, http.MethodPost, "/sessions/"+sid+"/advance",
		`{"target":"done","idempotencyKey":"adv-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["deduplicated"])
}

func TestStartSessionErrorsOverHTTP(t *testing.T) {
	e, configs := newTestServer(t)
	seedConfig(t, configs, "web-study")

	t.Run("missing configId", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodPost, "/sessions/start", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown config", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPost, "/sessions/start", `{"configId":"ghost"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", body["error"])
	})

	t.Run("unknown session", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodGet, "/sessions/does-not-exist", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMatchmakeOverHTTP(t *testing.T) {
	e, configs := newTestServer(t)
	seedConfig(t, configs, "mm-web")

	startSession := func() string {
		rec, body := doJSON(t, e, http.MethodPost, "/sessions/start", `{"configId":"mm-web"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		return body["sessionId"].(string)
	}
	s1 := startSession()
	s2 := startSession()

	mmBody := `{"poolId":"pairs","num_users":2,"timeoutSeconds":30}`

	rec, body := doJSON(t, e, http.MethodPost, "/sessions/"+s1+"/matchmake", mmBody)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "waiting", body["status"])
	assert.Equal(t, float64(1), body["position"])

	rec, body = doJSON(t, e, http.MethodPost, "/sessions/"+s2+"/matchmake", mmBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "matched", body["status"])
	assert.NotEmpty(t, body["groupId"])

	// s1 is already matched; cancelling finds nothing.
	rec, body = doJSON(t, e, http.MethodPost, "/sessions/"+s1+"/matchmake/cancel", `{"poolId":"pairs"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not_found", body["status"])
}

func TestChatOverHTTP(t *testing.T) {
	e, configs := newTestServer(t)
	seedConfig(t, configs, "chat-web")

	rec, body := doJSON(t, e, http.MethodPost, "/sessions/start", `{"configId":"chat-web"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sid := body["sessionId"].(string)

	// Solo chat addresses the session as its own group.
	rec, body = doJSON(t, e, http.MethodPost, "/chat/"+sid+"/send",
		`{"sessionId":"`+sid+`","content":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["messageId"])

	rec, body = doJSON(t, e, http.MethodGet, "/chat/"+sid+"/history?sessionId="+sid, "")
	require.Equal(t, http.StatusOK, rec.Code)
	msgs := body["messages"].([]interface{})
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].(map[string]interface{})["content"])

	t.Run("non-member forbidden", func(t *testing.T) {
		rec2, body2 := doJSON(t, e, http.MethodPost, "/sessions/start", `{"configId":"chat-web"}`)
		require.Equal(t, http.StatusOK, rec2.Code)
		other := body2["sessionId"].(string)

		rec2, body2 = doJSON(t, e, http.MethodPost, "/chat/"+sid+"/send",
			`{"sessionId":"`+other+`","content":"intruder"}`)
		assert.Equal(t, http.StatusForbidden, rec2.Code)
		assert.Equal(t, "not_a_member", body2["error"])
	})

	t.Run("missing sessionId on history", func(t *testing.T) {
		rec2, _ := doJSON(t, e, http.MethodGet, "/chat/"+sid+"/history", "")
		assert.Equal(t, http.StatusBadRequest, rec2.Code)
	})
}

func TestSSEStreamOverHTTP(t *testing.T) {
	e, configs := newTestServer(t)
	seedConfig(t, configs, "sse-web")

	rec, body := doJSON(t, e, http.MethodPost, "/sessions/start", `{"configId":"sse-web"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sid := body["sessionId"].(string)

	srv := httptest.NewServer(e)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/sessions/"+sid+"/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	// First frame on every stream is the connected event.
	reader := bufio.NewReader(resp.Body)
	eventLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected", strings.TrimSpace(eventLine))

	dataLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(dataLine), "data: ")), &payload))
	assert.NotEmpty(t, payload["subscriberId"])

	t.Run("unknown session rejected", func(t *testing.T) {
		resp2, err := http.Get(srv.URL + "/sessions/ghost/stream")
		require.NoError(t, err)
		defer resp2.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
	})
}
