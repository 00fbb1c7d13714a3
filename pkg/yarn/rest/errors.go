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
	"errors"
	"fmt"
)

// HTTPError is returned for any response whose status is not 2xx. Body holds
// the raw response, which for the ResourceManager is usually a
// RemoteException document.
type HTTPError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s returned %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// IsHTTPError reports whether err is or wraps an *HTTPError.
func IsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// UnexpectedResponseError is returned when a successful response does not have
// the JSON object shape an operation reads from, e.g. a plain text body.
type UnexpectedResponseError struct {
	Endpoint string
	Response interface{}
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %T %v", e.Endpoint, e.Response, e.Response)
}
