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
	"strings"
)

const (
	// ResourceManagerPathPrefix is appended to the cluster URL to form the
	// endpoint of the ResourceManager cluster REST API.
	ResourceManagerPathPrefix = "/ws/v1/cluster"

	appsEndpoint           = "/apps"
	newApplicationEndpoint = "/apps/new-application"

	AppStateKilled = "KILLED"
)

// Query parameters accepted by the cluster applications API.
const (
	QueryStates            = "states"
	QueryFinalStatus       = "finalStatus"
	QueryUser              = "user"
	QueryQueue             = "queue"
	QueryLimit             = "limit"
	QueryStartedTimeBegin  = "startedTimeBegin"
	QueryStartedTimeEnd    = "startedTimeEnd"
	QueryFinishedTimeBegin = "finishedTimeBegin"
	QueryFinishedTimeEnd   = "finishedTimeEnd"
	QueryApplicationTypes  = "applicationTypes"
	QueryApplicationTags   = "applicationTags"
	QueryName              = "name"
	QueryDeSelects         = "deSelects"
)

// QueryParam is a single key=value pair of a query string. Values are sent as
// given, so callers must escape reserved characters themselves.
type QueryParam struct {
	Key   string
	Value string
}

//go:generate mockgen -source=resourcemanager.go -destination=mockrest/mock_resourcemanager.go -package=mockrest -copyright_file=../../../hack/boilerplate.go.txt

// ResourceManagerAPI is the set of ResourceManager operations, implemented by
// ResourceManagerClient.
type ResourceManagerAPI interface {
	GetApps(params ...QueryParam) ([]interface{}, error)
	GetApp(applicationID string) (map[string]interface{}, error)
	CreateApp() (interface{}, error)
	SubmitApp(appRequest interface{}) (interface{}, error)
	KillApp(applicationID string) (interface{}, error)

	ListApplications(params ...QueryParam) ([]Application, error)
	GetApplication(applicationID string) (*Application, error)
	CreateApplication() (*NewApplication, error)
}

var _ ResourceManagerAPI = &ResourceManagerClient{}

// ResourceManagerClient talks to the ResourceManager REST API, see
// https://hadoop.apache.org/docs/stable/hadoop-yarn/hadoop-yarn-site/ResourceManagerRest.html
type ResourceManagerClient struct {
	*Client
}

func NewResourceManagerClient(clusterURL string) *ResourceManagerClient {
	return &ResourceManagerClient{Client: newClient(clusterURL, clusterURL+ResourceManagerPathPrefix)}
}

// GetApps lists applications, filtered by params in the given order. It
// returns an empty slice when the response holds no applications.
func (c *ResourceManagerClient) GetApps(params ...QueryParam) ([]interface{}, error) {
	endpoint := appsEndpoint
	if len(params) > 0 {
		endpoint = endpoint + "?" + encodeQuery(params)
	}
	resp, err := c.SendRequest(endpoint, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}
	body, ok := resp.(map[string]interface{})
	if !ok {
		return nil, &UnexpectedResponseError{Endpoint: endpoint, Response: resp}
	}
	apps, _ := body["apps"].(map[string]interface{})
	app, _ := apps["app"].([]interface{})
	if app == nil {
		app = []interface{}{}
	}
	return app, nil
}

// GetApp returns the report of one application, or an empty map when the
// response holds none.
func (c *ResourceManagerClient) GetApp(applicationID string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/%s", appsEndpoint, applicationID)
	resp, err := c.SendRequest(endpoint, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}
	body, ok := resp.(map[string]interface{})
	if !ok {
		return nil, &UnexpectedResponseError{Endpoint: endpoint, Response: resp}
	}
	app, _ := body["app"].(map[string]interface{})
	if app == nil {
		app = map[string]interface{}{}
	}
	return app, nil
}

// CreateApp asks the ResourceManager for a new application id.
func (c *ResourceManagerClient) CreateApp() (interface{}, error) {
	return c.SendRequest(newApplicationEndpoint, http.MethodPost, nil)
}

// SubmitApp submits appRequest, an application submission context, as is.
func (c *ResourceManagerClient) SubmitApp(appRequest interface{}) (interface{}, error) {
	return c.SendRequest(appsEndpoint, http.MethodPost, appRequest)
}

func (c *ResourceManagerClient) KillApp(applicationID string) (interface{}, error) {
	return c.SendRequest(fmt.Sprintf("%s/%s/state", appsEndpoint, applicationID), http.MethodPut,
		&AppState{State: AppStateKilled})
}

func (c *ResourceManagerClient) ListApplications(params ...QueryParam) ([]Application, error) {
	apps, err := c.GetApps(params...)
	if err != nil {
		return nil, err
	}
	res := []Application{}
	if err := convert(apps, &res); err != nil {
		return nil, fmt.Errorf("decode applications failed: %w", err)
	}
	return res, nil
}

func (c *ResourceManagerClient) GetApplication(applicationID string) (*Application, error) {
	app, err := c.GetApp(applicationID)
	if err != nil {
		return nil, err
	}
	res := &Application{}
	if err := convert(app, res); err != nil {
		return nil, fmt.Errorf("decode application %s failed: %w", applicationID, err)
	}
	return res, nil
}

func (c *ResourceManagerClient) CreateApplication() (*NewApplication, error) {
	resp, err := c.CreateApp()
	if err != nil {
		return nil, err
	}
	if _, ok := resp.(map[string]interface{}); !ok {
		return nil, &UnexpectedResponseError{Endpoint: newApplicationEndpoint, Response: resp}
	}
	res := &NewApplication{}
	if err := convert(resp, res); err != nil {
		return nil, fmt.Errorf("decode new application failed: %w", err)
	}
	return res, nil
}

func encodeQuery(params []QueryParam) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, p.Key+"="+p.Value)
	}
	return strings.Join(pairs, "&")
}

// convert re-encodes a decoded JSON value into out.
func convert(in, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
