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
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/koordinator-sh/yarn-rest/cmd/yarn-app-exporter/options"
	"github.com/koordinator-sh/yarn-rest/pkg/controller/metrics"
	"github.com/koordinator-sh/yarn-rest/pkg/yarn/rest"
)

func main() {
	conf := options.NewConfiguration()
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	goFlags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	klog.InitFlags(goFlags)
	fs.AddGoFlagSet(goFlags)
	conf.AddFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		klog.Fatal(err)
	}
	fs.VisitAll(func(f *pflag.Flag) {
		klog.Infof("args: %s = %s", f.Name, f.Value)
	})

	clusterURLs, err := conf.ParseClusterURLs()
	if err != nil {
		klog.Fatal(err)
	}
	clients := map[string]rest.ResourceManagerAPI{}
	for id, url := range clusterURLs {
		clients[id] = rest.NewResourceManagerClient(url)
		klog.V(3).Infof("init resource manager client %s for %s", id, url)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics.NewYarnAppCollector(clients, conf.QueryParams()...))
	mux := http.NewServeMux()
	mux.Handle(conf.MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: conf.ListenAddress, Handler: mux}

	stopCtx := signals.SetupSignalHandler()
	go func() {
		defer runtime.HandleCrash()
		<-stopCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			klog.Errorf("shutdown metrics server failed, error: %v", err)
		}
	}()

	klog.Infof("serving yarn application metrics on %s%s", conf.ListenAddress, conf.MetricsPath)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		klog.Fatal(err)
	}
	klog.Flush()
}
