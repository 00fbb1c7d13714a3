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

// Application is the application report of the cluster applications API.
type Application struct {
	Id                         string  `json:"id"`
	User                       string  `json:"user"`
	Name                       string  `json:"name"`
	Queue                      string  `json:"queue"`
	State                      string  `json:"state"`
	FinalStatus                string  `json:"finalStatus"`
	Progress                   float64 `json:"progress"`
	TrackingUI                 string  `json:"trackingUI"`
	TrackingUrl                string  `json:"trackingUrl"`
	Diagnostics                string  `json:"diagnostics"`
	ClusterId                  int64   `json:"clusterId"`
	ApplicationType            string  `json:"applicationType"`
	ApplicationTags            string  `json:"applicationTags"`
	Priority                   int     `json:"priority"`
	StartedTime                int64   `json:"startedTime"`
	LaunchTime                 int64   `json:"launchTime"`
	FinishedTime               int64   `json:"finishedTime"`
	ElapsedTime                int64   `json:"elapsedTime"`
	AmContainerLogs            string  `json:"amContainerLogs"`
	AmHostHttpAddress          string  `json:"amHostHttpAddress"`
	AmRPCAddress               string  `json:"amRPCAddress"`
	AllocatedMB                int64   `json:"allocatedMB"`
	AllocatedVCores            int64   `json:"allocatedVCores"`
	ReservedMB                 int64   `json:"reservedMB"`
	ReservedVCores             int64   `json:"reservedVCores"`
	RunningContainers          int     `json:"runningContainers"`
	MemorySeconds              int64   `json:"memorySeconds"`
	VcoreSeconds               int64   `json:"vcoreSeconds"`
	QueueUsagePercentage       float64 `json:"queueUsagePercentage"`
	ClusterUsagePercentage     float64 `json:"clusterUsagePercentage"`
	PreemptedResourceMB        int64   `json:"preemptedResourceMB"`
	PreemptedResourceVCores    int64   `json:"preemptedResourceVCores"`
	NumNonAMContainerPreempted int     `json:"numNonAMContainerPreempted"`
	NumAMContainerPreempted    int     `json:"numAMContainerPreempted"`
	LogAggregationStatus       string  `json:"logAggregationStatus"`
	UnmanagedApplication       bool    `json:"unmanagedApplication"`
}

type ResourceCapability struct {
	Memory int64 `json:"memory"`
	VCores int64 `json:"vCores"`
}

// NewApplication is the response of the new application API.
type NewApplication struct {
	ApplicationId             string             `json:"application-id"`
	MaximumResourceCapability ResourceCapability `json:"maximum-resource-capability"`
}

type AppState struct {
	State string `json:"state"`
}
