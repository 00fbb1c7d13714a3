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

package main

import (
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/koordinator-sh/yarn-rest/pkg/yarn/rest"
)

func main() {
	clusterURL := pflag.String("cluster-url", "http://localhost:8088", "resource manager web address")
	states := pflag.String("states", "RUNNING", "comma separated application states")
	pflag.Parse()

	rmClient := rest.NewResourceManagerClient(*clusterURL)
	apps, err := rmClient.ListApplications(rest.QueryParam{Key: rest.QueryStates, Value: *states})
	if err != nil {
		klog.Fatalf("list applications failed, error %v", err)
	}
	for _, app := range apps {
		klog.Infof("%s %s %s %s progress %.1f%%", app.Id, app.Name, app.Queue, app.State, app.Progress)
	}
	klog.Flush()
}
