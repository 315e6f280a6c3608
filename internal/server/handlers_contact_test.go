package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postContact(s *Server, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(s, req)
}

func validContactForm() url.Values {
	return url.Values{
		"name":    {"Alice Johnson"},
		"email":   {"alice@example.com"},
		"message": {"Great portfolio! I'd like to discuss a potential collaboration."},
	}
}

func TestHandleContactSubmit_Success(t *testing.T) {
	s, f := newTestServer(t)

	w := postContact(s, validContactForm())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent!")

	require.Len(t, f.log.appended, 1)
	stored := f.log.appended[0]
	assert.Equal(t, "Alice Johnson", stored.Name)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.False(t, stored.CreatedAt.IsZero())

	require.Len(t, f.db.saved, 1)
	assert.Equal(t, stored.ID, f.db.saved[0].ID)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, stored.ID, f.mailer.sent[0].ID)
}

func TestHandleContactSubmit_SanitizesMessage(t *testing.T) {
	s, f := newTestServer(t)

	form := validContactForm()
	form.Set("message", `Hello <script>alert("xss")</script> world`)

	w := postContact(s, form)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, f.log.appended, 1)
	msg := f.log.appended[0].Message
	assert.NotContains(t, msg, "<script>")
	assert.Contains(t, msg, "Hello")
	assert.Contains(t, msg, "world")
}

func TestHandleContactSubmit_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		strip string
	}{
		{"missing name", "name"},
		{"missing email", "email"},
		{"missing message", "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newTestServer(t)

			form := validContactForm()
			form.Del(tt.strip)

			w := postContact(s, form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Something went wrong")
			assert.Empty(t, f.log.appended)
			assert.Empty(t, f.mailer.sent)
		})
	}
}

func TestHandleContactSubmit_InvalidEmail(t *testing.T) {
	s, _ := newTestServer(t)

	form := validContactForm()
	form.Set("email", "not-an-email")

	w := postContact(s, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleContactSubmit_StoreFailure(t *testing.T) {
	s, f := newTestServer(t)
	f.log.err = errors.New("disk full")

	w := postContact(s, validContactForm())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Could not save your message")
	assert.Empty(t, f.mailer.sent, "mail is not sent when persistence fails")
}

func TestHandleContactSubmit_MailFailureStillSucceeds(t *testing.T) {
	s, f := newTestServer(t)
	f.mailer.err = errors.New("smtp connection refused")

	w := postContact(s, validContactForm())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent!")
	assert.Len(t, f.log.appended, 1, "submission is still stored")
}

func TestHandleContactSubmit_DatabaseFailureStillSucceeds(t *testing.T) {
	s, f := newTestServer(t)
	f.db.err = errors.New("connection refused")

	w := postContact(s, validContactForm())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, f.log.appended, 1)
	assert.Len(t, f.mailer.sent, 1)
}

func TestHandleContactSubmit_NoDatabase(t *testing.T) {
	s, f := newTestServer(t)
	s.database = nil

	w := postContact(s, validContactForm())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, f.log.appended, 1)
}
