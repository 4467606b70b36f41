package emailjs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/email-otp-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSenderFor(url string) *Sender {
	return NewSender(&config.Config{
		EmailJSAPIURL:     url,
		EmailJSServiceID:  "svc_1",
		EmailJSTemplateID: "tpl_1",
		EmailJSUserID:     "usr_1",
	})
}

func TestSend_PostsTemplateParams(t *testing.T) {
	var got sendPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newSenderFor(srv.URL).Send(context.Background(), "a@b.com", "042137")
	require.NoError(t, err)
	assert.Equal(t, "svc_1", got.ServiceID)
	assert.Equal(t, "tpl_1", got.TemplateID)
	assert.Equal(t, "usr_1", got.UserID)
	assert.Equal(t, "a@b.com", got.TemplateParams["to_email"])
	assert.Equal(t, "042137", got.TemplateParams["code"])
}

func TestSend_Non200IsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	err := newSenderFor(srv.URL).Send(context.Background(), "a@b.com", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSend_UnreachableHost(t *testing.T) {
	err := newSenderFor("http://127.0.0.1:1").Send(context.Background(), "a@b.com", "123456")
	assert.Error(t, err)
}
