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
	appID := pflag.String("app-id", "", "id of the application to kill")
	pflag.Parse()
	if *appID == "" {
		klog.Fatal("--app-id is required")
	}

	rmClient := rest.NewResourceManagerClient(*clusterURL)
	app, err := rmClient.GetApplication(*appID)
	if err != nil {
		klog.Fatalf("get application %s failed, error %v", *appID, err)
	}
	klog.Infof("application %s is %s", app.Id, app.State)

	response, err := rmClient.KillApp(*appID)
	if err != nil {
		klog.Fatalf("kill application %s failed, error %v", *appID, err)
	}
	klog.Infof("KillApp response %v", response)
}
