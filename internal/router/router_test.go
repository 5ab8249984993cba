package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itchan-dev/forumapi/internal/config"
	"github.com/itchan-dev/forumapi/internal/setup"
	"github.com/itchan-dev/forumapi/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	server *httptest.Server
}

func newClient(t *testing.T) *client {
	return newClientWithConfig(t, config.Public{Storage: config.StorageMemory, BcryptCost: 4})
}

func newClientWithConfig(t *testing.T, public config.Public) *client {
	cfg := config.New(public, config.Private{AccessTokenKey: "access", RefreshTokenKey: "refresh"})
	deps := setup.Wire(cfg, memory.New())
	server := httptest.NewServer(New(deps))
	t.Cleanup(func() {
		server.Close()
		deps.Close()
	})
	return &client{t: t, server: server}
}

func (c *client) do(method, path, token, body string) (int, map[string]any) {
	c.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func data(body map[string]any, key string) map[string]any {
	d, _ := body["data"].(map[string]any)
	v, _ := d[key].(map[string]any)
	return v
}

func (c *client) login(username string) string {
	c.t.Helper()
	status, _ := c.do(http.MethodPost, "/users", "", `{"username":"`+username+`","password":"secret","fullname":"Full Name"}`)
	require.Equal(c.t, http.StatusCreated, status)
	status, body := c.do(http.MethodPost, "/authentications", "", `{"username":"`+username+`","password":"secret"}`)
	require.Equal(c.t, http.StatusCreated, status)
	return body["data"].(map[string]any)["accessToken"].(string)
}

func TestForumFlow(t *testing.T) {
	c := newClient(t)
	alice := c.login("alice")
	bob := c.login("bob")

	status, body := c.do(http.MethodPost, "/threads", "", `{"title":"t","body":"b"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Missing authentication", body["message"])

	status, body = c.do(http.MethodPost, "/threads", alice, `{"title":"a title","body":"a body"}`)
	require.Equal(t, http.StatusCreated, status)
	threadId := data(body, "addedThread")["id"].(string)

	status, body = c.do(http.MethodPost, "/threads/"+threadId+"/comments", bob, `{"content":"first"}`)
	require.Equal(t, http.StatusCreated, status)
	commentId := data(body, "addedComment")["id"].(string)

	status, body = c.do(http.MethodPost, "/threads/"+threadId+"/comments/"+commentId+"/replies", alice, `{"content":"reply"}`)
	require.Equal(t, http.StatusCreated, status)
	replyId := data(body, "addedReply")["id"].(string)

	status, _ = c.do(http.MethodPut, "/threads/"+threadId+"/comments/"+commentId+"/likes", alice, "")
	require.Equal(t, http.StatusOK, status)

	status, body = c.do(http.MethodDelete, "/threads/"+threadId+"/comments/"+commentId, alice, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Anda tidak memiliki izin untuk melakukan aksi ini", body["message"])

	status, _ = c.do(http.MethodDelete, "/threads/"+threadId+"/comments/"+commentId+"/replies/"+replyId, alice, "")
	require.Equal(t, http.StatusOK, status)
	status, _ = c.do(http.MethodDelete, "/threads/"+threadId+"/comments/"+commentId, bob, "")
	require.Equal(t, http.StatusOK, status)

	status, body = c.do(http.MethodGet, "/threads/"+threadId, "", "")
	require.Equal(t, http.StatusOK, status)
	thread := data(body, "thread")
	assert.Equal(t, "alice", thread["username"])
	comments := thread["comments"].([]any)
	require.Len(t, comments, 1)
	comment := comments[0].(map[string]any)
	assert.Equal(t, "**komentar telah dihapus**", comment["content"])
	assert.Equal(t, float64(1), comment["likeCount"])
	replies := comment["replies"].([]any)
	require.Len(t, replies, 1)
	reply := replies[0].(map[string]any)
	assert.Equal(t, "**balasan telah dihapus**", reply["content"])
	assert.NotContains(t, reply, "commentId")

	status, body = c.do(http.MethodGet, "/threads/thread-missing", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "thread tidak ditemukan", body["message"])
}

func TestContentStoredAsReceived(t *testing.T) {
	c := newClient(t)
	token := c.login("frank")

	contents := []string{"if a<b and c>d then", "&lt;script&gt;alert(1)&lt;/script&gt;", "<b></b>"}
	for _, content := range contents {
		encoded, err := json.Marshal(content)
		require.NoError(t, err)

		status, body := c.do(http.MethodPost, "/threads", token, `{"title":`+string(encoded)+`,"body":`+string(encoded)+`}`)
		require.Equal(t, http.StatusCreated, status, content)
		threadId := data(body, "addedThread")["id"].(string)
		assert.Equal(t, content, data(body, "addedThread")["title"])

		status, body = c.do(http.MethodPost, "/threads/"+threadId+"/comments", token, `{"content":`+string(encoded)+`}`)
		require.Equal(t, http.StatusCreated, status, content)
		commentId := data(body, "addedComment")["id"].(string)

		status, _ = c.do(http.MethodPost, "/threads/"+threadId+"/comments/"+commentId+"/replies", token, `{"content":`+string(encoded)+`}`)
		require.Equal(t, http.StatusCreated, status, content)

		status, body = c.do(http.MethodGet, "/threads/"+threadId, "", "")
		require.Equal(t, http.StatusOK, status)
		thread := data(body, "thread")
		assert.Equal(t, content, thread["title"])
		assert.Equal(t, content, thread["body"])
		comment := thread["comments"].([]any)[0].(map[string]any)
		assert.Equal(t, content, comment["content"])
		reply := comment["replies"].([]any)[0].(map[string]any)
		assert.Equal(t, content, reply["content"])
	}
}

func TestReplyToDeletedComment(t *testing.T) {
	c := newClient(t)
	token := c.login("grace")

	status, body := c.do(http.MethodPost, "/threads", token, `{"title":"t","body":"b"}`)
	require.Equal(t, http.StatusCreated, status)
	threadId := data(body, "addedThread")["id"].(string)
	status, body = c.do(http.MethodPost, "/threads/"+threadId+"/comments", token, `{"content":"c"}`)
	require.Equal(t, http.StatusCreated, status)
	commentId := data(body, "addedComment")["id"].(string)

	status, _ = c.do(http.MethodDelete, "/threads/"+threadId+"/comments/"+commentId, token, "")
	require.Equal(t, http.StatusOK, status)

	status, body = c.do(http.MethodPost, "/threads/"+threadId+"/comments/"+commentId+"/replies", token, `{"content":"r"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "komentar tidak ditemukan", body["message"])
}

func TestEmptyThreadAndValidation(t *testing.T) {
	c := newClient(t)
	token := c.login("carol")

	status, body := c.do(http.MethodPost, "/threads", token, `{"title":"only title"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "fail", body["status"])

	status, body = c.do(http.MethodPost, "/threads", token, `{"title":"t","body":"b"}`)
	require.Equal(t, http.StatusCreated, status)
	threadId := data(body, "addedThread")["id"].(string)

	status, body = c.do(http.MethodGet, "/threads/"+threadId, "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, data(body, "thread")["comments"])

	status, _ = c.do(http.MethodPost, "/threads/thread-missing/comments", token, `{"content":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAuthenticationLifecycle(t *testing.T) {
	c := newClient(t)
	c.login("dave")

	status, body := c.do(http.MethodPost, "/authentications", "", `{"username":"dave","password":"secret"}`)
	require.Equal(t, http.StatusCreated, status)
	refresh := body["data"].(map[string]any)["refreshToken"].(string)

	status, body = c.do(http.MethodPut, "/authentications", "", `{"refreshToken":"`+refresh+`"}`)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["data"].(map[string]any)["accessToken"])

	status, _ = c.do(http.MethodDelete, "/authentications", "", `{"refreshToken":"`+refresh+`"}`)
	require.Equal(t, http.StatusOK, status)

	status, body = c.do(http.MethodPut, "/authentications", "", `{"refreshToken":"`+refresh+`"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "refresh token tidak ditemukan di database", body["message"])

	status, body = c.do(http.MethodPost, "/authentications", "", `{"username":"dave","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "kredensial yang Anda masukkan salah", body["message"])

	status, _ = c.do(http.MethodPost, "/users", "", `{"username":"dave","password":"x","fullname":"Again"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestOperationalEndpoints(t *testing.T) {
	c := newClient(t)

	status, body := c.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	resp, err := http.Get(c.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "forum_http_requests_total")
}

func TestAuthRateLimit(t *testing.T) {
	c := newClientWithConfig(t, config.Public{Storage: config.StorageMemory, BcryptCost: 4, AuthRateLimitPerMinute: 2})

	status, _ := c.do(http.MethodPost, "/users", "", `{"username":"erin","password":"secret","fullname":"Erin"}`)
	require.Equal(t, http.StatusCreated, status)
	status, _ = c.do(http.MethodPost, "/authentications", "", `{"username":"erin","password":"secret"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := c.do(http.MethodPost, "/authentications", "", `{"username":"erin","password":"secret"}`)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "fail", body["status"])

	// reads are not limited
	status, _ = c.do(http.MethodGet, "/threads/thread-missing", "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSecurityHeadersOnResponses(t *testing.T) {
	c := newClient(t)

	resp, err := http.Get(c.server.URL + "/threads/thread-missing")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
