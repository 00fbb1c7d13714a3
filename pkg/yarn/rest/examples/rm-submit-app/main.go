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
	command := pflag.String("command", "sleep 60", "command of the application master container")
	queue := pflag.String("queue", "default", "queue to submit to")
	pflag.Parse()

	rmClient := rest.NewResourceManagerClient(*clusterURL)
	newApp, err := rmClient.CreateApplication()
	if err != nil {
		klog.Fatalf("create application failed, error %v", err)
	}
	klog.Infof("new application %s, max capability %+v", newApp.ApplicationId, newApp.MaximumResourceCapability)

	appRequest := map[string]interface{}{
		"application-id":   newApp.ApplicationId,
		"application-name": "rest-example",
		"queue":            *queue,
		"application-type": "YARN",
		"am-container-spec": map[string]interface{}{
			"commands": map[string]interface{}{"command": *command},
		},
		"resource": map[string]interface{}{
			"memory": 1024,
			"vCores": 1,
		},
		"max-app-attempts": 1,
	}
	response, err := rmClient.SubmitApp(appRequest)
	if err != nil {
		klog.Fatalf("submit application %s failed, error %v", newApp.ApplicationId, err)
	}
	klog.Infof("SubmitApp response %v", response)
}
