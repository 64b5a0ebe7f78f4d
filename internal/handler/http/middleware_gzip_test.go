// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler answers with the request body, or a fixed payload when empty.
func echoHandler(payload string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		if len(body) > 0 {
			w.Write(body)
			return
		}
		w.Write([]byte(payload))
	})
}

func TestGZip(t *testing.T) {
	payload := `[{"_id":"c1","title":"Go","totalEnrollment":5}]`

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            []byte
		gzipBody        bool
		wantStatus      int
		wantGzipped     bool
		wantBody        string
	}{
		{name: "compresses when accepted", acceptEncoding: "gzip", wantStatus: http.StatusOK, wantGzipped: true, wantBody: payload},
		{name: "plain when not accepted", wantStatus: http.StatusOK, wantBody: payload},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip;q=1.0, br", wantStatus: http.StatusOK, wantGzipped: true, wantBody: payload},
		{name: "large payload", acceptEncoding: "gzip", body: []byte(strings.Repeat("course ", 2000)), gzipBody: true, contentEncoding: "gzip", wantStatus: http.StatusOK, wantGzipped: true, wantBody: strings.Repeat("course ", 2000)},
		{name: "decodes gzipped request", contentEncoding: "gzip", body: []byte(`{"price":10}`), gzipBody: true, wantStatus: http.StatusOK, wantBody: `{"price":10}`},
		{name: "rejects broken gzip request", contentEncoding: "gzip", body: []byte("plain text"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if tt.gzipBody {
				body = gzipBytes(t, body)
			}

			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewReader(body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(echoHandler(payload)).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body.Bytes()))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestGZip_ImplicitStatusSetsEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("course plus server is running"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "course plus server is running", gunzip(t, rr.Body.Bytes()))
}

func TestGZip_ErrorStatusIsCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden access", http.StatusForbidden)
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "forbidden access\n", gunzip(t, rr.Body.Bytes()))
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(echoHandler("ok"))

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/counts", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			out, _ := io.ReadAll(zr)
			assert.Equal(t, "ok", string(out))
		}()
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}

	require.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
