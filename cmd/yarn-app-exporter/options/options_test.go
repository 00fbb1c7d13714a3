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
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/koordinator-sh/yarn-rest/pkg/yarn/rest"
)

func TestParseClusterURLs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:    "no cluster",
			args:    nil,
			wantErr: true,
		},
		{
			name: "plain url",
			args: []string{"--cluster-url=http://rm:8088"},
			want: map[string]string{DefaultClusterID: "http://rm:8088"},
		},
		{
			name: "multiple clusters",
			args: []string{"--cluster-url", "c1=http://rm1:8088", "--cluster-url", "c2=http://rm2:8088?x=y"},
			want: map[string]string{"c1": "http://rm1:8088", "c2": "http://rm2:8088?x=y"},
		},
		{
			name:    "empty id",
			args:    []string{"--cluster-url=" + "=http://rm:8088"},
			wantErr: true,
		},
		{
			name:    "duplicated id",
			args:    []string{"--cluster-url=c1=http://rm1:8088", "--cluster-url=c1=http://rm2:8088"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := NewConfiguration()
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			conf.AddFlags(fs)
			assert.NoError(t, fs.Parse(tt.args))

			got, err := conf.ParseClusterURLs()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParams(t *testing.T) {
	conf := NewConfiguration()
	assert.Equal(t, DefaultListenAddress, conf.ListenAddress)
	assert.Equal(t, DefaultMetricsPath, conf.MetricsPath)
	assert.Nil(t, conf.QueryParams())

	conf.AppStates = "RUNNING,ACCEPTED"
	assert.Equal(t, []rest.QueryParam{{Key: rest.QueryStates, Value: "RUNNING,ACCEPTED"}}, conf.QueryParams())
}
