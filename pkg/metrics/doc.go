// Package metrics exports widget lifecycle metrics to Prometheus.
//
// Usage:
//
//	collector := metrics.New(metrics.WithNamespace("gallery"))
//	root, err := component.Mount(ctx, Page, props,
//	    component.WithToolkit(tk),
//	    binding.WithObserver(collector),
//	)
//	http.Handle("/metrics", collector.Handler())
package metrics
