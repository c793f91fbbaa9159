// Copyright 2026 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serverutil provides helper functions to main.go files.
package serverutil

import (
	"context"
	"net/http"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gocloud.dev/health"
)

// MetricsHandler serves /metrics and health checks.
func MetricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", http.HandlerFunc(health.HandleLive))
	mux.Handle("/", RootHealthHandler(http.NotFoundHandler()))
	return mux
}

// ServeHTTPMetrics serves monitoring APIs on addr until ctx is done.
func ServeHTTPMetrics(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: MetricsHandler()}
	go func() {
		<-ctx.Done()
		if err := srv.Close(); err != nil {
			glog.Errorf("Closing metrics server: %v", err)
		}
	}()

	glog.Infof("Hosting server status and metrics on %v", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
