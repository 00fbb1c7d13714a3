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

package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"

	"github.com/koordinator-sh/yarn-rest/pkg/yarn/rest"
)

var (
	yarnAppCountMetric = prometheus.NewDesc(
		yarnAppCount,
		"yarn application count by state",
		[]string{"cluster", "state"},
		nil)
	yarnAppAllocatedVCoresMetric = prometheus.NewDesc(
		yarnAppAllocatedVCores,
		"yarn application allocated vcores",
		[]string{"cluster", "app", "queue"},
		nil)
	yarnAppAllocatedMemoryMetric = prometheus.NewDesc(
		yarnAppAllocatedMemoryBytes,
		"yarn application allocated memory",
		[]string{"cluster", "app", "queue"},
		nil)
	yarnRMScrapeErrorMetric = prometheus.NewDesc(
		yarnRMScrapeError,
		"1 if the last list of applications from resource manager failed",
		[]string{"cluster"},
		nil)
)

// YarnAppCollector lists applications from every resource manager on each
// scrape, nothing is cached between scrapes.
type YarnAppCollector struct {
	clients map[string]rest.ResourceManagerAPI
	params  []rest.QueryParam
}

func NewYarnAppCollector(clients map[string]rest.ResourceManagerAPI, params ...rest.QueryParam) *YarnAppCollector {
	return &YarnAppCollector{clients: clients, params: params}
}

func (y *YarnAppCollector) Describe(descs chan<- *prometheus.Desc) {
	descs <- yarnAppCountMetric
	descs <- yarnAppAllocatedVCoresMetric
	descs <- yarnAppAllocatedMemoryMetric
	descs <- yarnRMScrapeErrorMetric
}

func (y *YarnAppCollector) Collect(metrics chan<- prometheus.Metric) {
	clusterIDs := make([]string, 0, len(y.clients))
	for clusterID := range y.clients {
		clusterIDs = append(clusterIDs, clusterID)
	}
	sort.Strings(clusterIDs)

	for _, clusterID := range clusterIDs {
		apps, err := y.clients[clusterID].ListApplications(y.params...)
		if err != nil {
			klog.Errorf("list yarn applications of cluster %s failed, error: %v", clusterID, err)
			metrics <- prometheus.MustNewConstMetric(yarnRMScrapeErrorMetric, prometheus.GaugeValue, 1, clusterID)
			continue
		}
		metrics <- prometheus.MustNewConstMetric(yarnRMScrapeErrorMetric, prometheus.GaugeValue, 0, clusterID)
		klog.V(4).Infof("list %d yarn applications of cluster %s", len(apps), clusterID)

		countByState := map[string]int{}
		for _, app := range apps {
			countByState[app.State]++
			// finished applications report -1
			if app.AllocatedVCores < 0 || app.AllocatedMB < 0 {
				continue
			}
			metrics <- prometheus.MustNewConstMetric(
				yarnAppAllocatedVCoresMetric,
				prometheus.GaugeValue,
				float64(app.AllocatedVCores),
				clusterID,
				app.Id,
				app.Queue,
			)
			metrics <- prometheus.MustNewConstMetric(
				yarnAppAllocatedMemoryMetric,
				prometheus.GaugeValue,
				float64(app.AllocatedMB*1024*1024),
				clusterID,
				app.Id,
				app.Queue,
			)
		}
		for state, count := range countByState {
			metrics <- prometheus.MustNewConstMetric(
				yarnAppCountMetric,
				prometheus.GaugeValue,
				float64(count),
				clusterID,
				state,
			)
		}
	}
}
