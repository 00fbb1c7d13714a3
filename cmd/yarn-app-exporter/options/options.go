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

package options

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/koordinator-sh/yarn-rest/pkg/yarn/rest"
)

const (
	DefaultListenAddress = ":9108"
	DefaultMetricsPath   = "/metrics"

	DefaultClusterID = "__default_yarn_cluster__"
)

type Configuration struct {
	ClusterURLs   []string
	ListenAddress string
	MetricsPath   string
	AppStates     string
}

func NewConfiguration() *Configuration {
	return &Configuration{
		ListenAddress: DefaultListenAddress,
		MetricsPath:   DefaultMetricsPath,
	}
}

func (c *Configuration) AddFlags(fs *pflag.FlagSet) {
	fs.StringArrayVar(&c.ClusterURLs, "cluster-url", c.ClusterURLs, "resource manager web address, as url or cluster-id=url, repeat for more clusters.")
	fs.StringVar(&c.ListenAddress, "listen-address", c.ListenAddress, "address to serve metrics on.")
	fs.StringVar(&c.MetricsPath, "metrics-path", c.MetricsPath, "path to serve metrics on.")
	fs.StringVar(&c.AppStates, "app-states", c.AppStates, "comma separated application states to list, all states if empty.")
}

// ParseClusterURLs maps cluster id to resource manager url. An entry without
// an id is registered as DefaultClusterID.
func (c *Configuration) ParseClusterURLs() (map[string]string, error) {
	if len(c.ClusterURLs) == 0 {
		return nil, fmt.Errorf("at least one --cluster-url is required")
	}
	res := map[string]string{}
	for _, value := range c.ClusterURLs {
		id, url := DefaultClusterID, value
		if i := strings.Index(value, "="); i >= 0 {
			id, url = value[:i], value[i+1:]
		}
		if id == "" || url == "" {
			return nil, fmt.Errorf("bad cluster url %q", value)
		}
		if _, exist := res[id]; exist {
			return nil, fmt.Errorf("duplicated cluster id %s", id)
		}
		res[id] = url
	}
	return res, nil
}

// QueryParams returns the filter passed to every application list.
func (c *Configuration) QueryParams() []rest.QueryParam {
	if c.AppStates == "" {
		return nil
	}
	return []rest.QueryParam{{Key: rest.QueryStates, Value: c.AppStates}}
}
