/*
Copyright 2023 The Koordinator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method     string
	RequestURI string
	Header     http.Header
	Body       string
}

// fakeServer answers every request with a fixed status and body and records
// what it received.
type fakeServer struct {
	*httptest.Server

	status int
	body   string

	mtx      sync.Mutex
	requests []recordedRequest
}

func newFakeServer(t *testing.T, status int, body string) *fakeServer {
	f := &fakeServer{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		f.mtx.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method:     r.Method,
			RequestURI: r.RequestURI,
			Header:     r.Header.Clone(),
			Body:       string(data),
		})
		f.mtx.Unlock()
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeServer) Requests() []recordedRequest {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return append([]recordedRequest{}, f.requests...)
}

func (f *fakeServer) LastRequest(t *testing.T) recordedRequest {
	reqs := f.Requests()
	require.NotEmpty(t, reqs)
	return reqs[len(reqs)-1]
}

func TestNewClient(t *testing.T) {
	c := NewClient("http://rm:8088")
	assert.Equal(t, "http://rm:8088", c.ClusterURL())
	assert.Equal(t, "", c.Endpoint())
}

func TestSendRequest(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		respBody   string
		endpoint   string
		method     string
		data       interface{}
		wantMethod string
		wantURI    string
		wantBody   string
		want       interface{}
		wantErr    bool
	}{
		{
			name:       "default method is GET",
			status:     http.StatusOK,
			respBody:   `{"clusterInfo":{"id":1}}`,
			endpoint:   "/ws/v1/cluster/info",
			wantMethod: http.MethodGet,
			wantURI:    "/ws/v1/cluster/info",
			want:       map[string]interface{}{"clusterInfo": map[string]interface{}{"id": float64(1)}},
		},
		{
			name:       "json body sent",
			status:     http.StatusAccepted,
			respBody:   `[1,2]`,
			endpoint:   "/apps",
			method:     http.MethodPost,
			data:       map[string]interface{}{"application-id": "app_1"},
			wantMethod: http.MethodPost,
			wantURI:    "/apps",
			wantBody:   `{"application-id":"app_1"}`,
			want:       []interface{}{float64(1), float64(2)},
		},
		{
			name:       "non json body returned as text",
			status:     http.StatusOK,
			respBody:   "OK",
			endpoint:   "/apps",
			method:     http.MethodPut,
			wantMethod: http.MethodPut,
			wantURI:    "/apps",
			want:       "OK",
		},
		{
			name:       "empty body returned as empty text",
			status:     http.StatusOK,
			endpoint:   "/apps",
			wantMethod: http.MethodGet,
			wantURI:    "/apps",
			want:       "",
		},
		{
			name:       "query string passed through",
			status:     http.StatusOK,
			respBody:   `{}`,
			endpoint:   "/apps?states=RUNNING,ACCEPTED&user=hadoop",
			wantMethod: http.MethodGet,
			wantURI:    "/apps?states=RUNNING,ACCEPTED&user=hadoop",
			want:       map[string]interface{}{},
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			respBody:   `{"RemoteException":{"message":"boom"}}`,
			endpoint:   "/apps",
			wantMethod: http.MethodGet,
			wantURI:    "/apps",
			wantErr:    true,
		},
		{
			name:       "not found",
			status:     http.StatusNotFound,
			endpoint:   "/apps/app_0",
			wantMethod: http.MethodGet,
			wantURI:    "/apps/app_0",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFakeServer(t, tt.status, tt.respBody)
			c := NewClient(server.URL)
			c.endpoint = server.URL

			got, err := c.SendRequest(tt.endpoint, tt.method, tt.data)
			req := server.LastRequest(t)
			assert.Len(t, server.Requests(), 1)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantURI, req.RequestURI)
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, req.Body)
			} else {
				assert.Empty(t, req.Body)
			}

			if tt.wantErr {
				require.Error(t, err)
				httpErr, ok := IsHTTPError(err)
				require.True(t, ok)
				assert.Equal(t, tt.status, httpErr.StatusCode)
				assert.Equal(t, tt.respBody, httpErr.Body)
				assert.Equal(t, tt.wantMethod, httpErr.Method)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSendRequestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewClient(url)
	c.endpoint = url
	got, err := c.SendRequest("/apps", http.MethodGet, nil)
	assert.Error(t, err)
	assert.Nil(t, got)
	_, ok := IsHTTPError(err)
	assert.False(t, ok)
}
