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
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"k8s.io/klog/v2"
)

const (
	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	mimeJSON          = "application/json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client sends requests to a YARN daemon REST endpoint. Every request carries
// the same JSON headers and is addressed relative to the endpoint prefix.
type Client struct {
	clusterURL string
	endpoint   string

	client *resty.Client
}

// NewClient returns a client for the cluster at clusterURL. The endpoint
// prefix is empty until a daemon specific client sets it.
func NewClient(clusterURL string) *Client {
	return newClient(clusterURL, "")
}

func newClient(clusterURL, endpoint string) *Client {
	client := resty.New()
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal
	client.SetHeader(headerContentType, mimeJSON).
		SetHeader(headerAccept, mimeJSON)
	return &Client{
		clusterURL: clusterURL,
		endpoint:   endpoint,
		client:     client,
	}
}

func (c *Client) ClusterURL() string {
	return c.clusterURL
}

// Endpoint returns the prefix every relative endpoint is appended to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SendRequest issues a single request to endpoint, which is appended verbatim
// to the endpoint prefix and may carry a query string. An empty method means
// GET. A non-nil data is sent as the JSON body.
//
// Any non-2xx status is returned as *HTTPError. A successful body is decoded
// as JSON; if it is not valid JSON the raw text is returned instead.
func (c *Client) SendRequest(endpoint, method string, data interface{}) (interface{}, error) {
	if method == "" {
		method = http.MethodGet
	}
	url := c.endpoint + endpoint

	req := c.client.R()
	if data != nil {
		req.SetBody(data)
	}
	klog.V(4).Infof("send %s request to %s", method, url)
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, url, err)
	}
	klog.V(5).Infof("response from %s %s, status %d, body %s", method, url, resp.StatusCode(), string(resp.Body()))
	if !resp.IsSuccess() {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Method:     method,
			URL:        url,
			Body:       string(resp.Body()),
		}
	}
	return decodeBody(resp.Body()), nil
}

// decodeBody falls back to the raw text for bodies that are not JSON,
// including an empty body.
func decodeBody(body []byte) interface{} {
	if len(body) == 0 {
		return ""
	}
	var res interface{}
	if err := json.Unmarshal(body, &res); err != nil {
		return string(body)
	}
	return res
}
