package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleResumeDownload_DefaultLanguage(t *testing.T) {
	s, f := newTestServer(t)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/resume/download", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "en", f.pdf.lastLanguage)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Leonardo_Murakami_Resume_EN.pdf",
		w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.7 test", w.Body.String())
}

func TestHandleResumeDownload_Portuguese(t *testing.T) {
	s, f := newTestServer(t)
	f.pdf.filename = "Leonardo_Murakami_Resume_PT.pdf"

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/resume/download?language=pt", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "pt", f.pdf.lastLanguage)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "_PT.pdf")
}

func TestHandleResumeDownload_GeneratorError(t *testing.T) {
	s, f := newTestServer(t)
	f.pdf.err = errors.New("chrome exploded")

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/resume/download", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error generating PDF")
}
