package xmetrics

import "github.com/selectdb/observable_list/pkg/xerror"

type IMetricsTag interface {
	Tag() []string
}

type metricsTag struct {
	tags []string
}

// dispatch metrics
type dispatchMetrics struct {
	metricsTag
	kind string
}

func DispatchMetrics(kind string) *dispatchMetrics {
	return &dispatchMetrics{
		metricsTag: metricsTag{[]string{"dispatch"}},
		kind:       kind,
	}
}

func (d *dispatchMetrics) Tag() []string {
	return append(d.tags, d.kind)
}

func (d *dispatchMetrics) Dispatches() IMetricsTag {
	d.tags = append(d.tags, "dispatches")
	return d
}

func (d *dispatchMetrics) Deliveries() IMetricsTag {
	d.tags = append(d.tags, "deliveries")
	return d
}

// registry metrics
type registryMetrics struct {
	metricsTag
}

func RegistryMetrics() *registryMetrics {
	return &registryMetrics{
		metricsTag: metricsTag{[]string{"registry"}},
	}
}

func (r *registryMetrics) Tag() []string {
	return r.tags
}

func (r *registryMetrics) Registered(mode string) IMetricsTag {
	r.tags = append(r.tags, "registered", mode)
	return r
}

func (r *registryMetrics) Unregistered() IMetricsTag {
	r.tags = append(r.tags, "unregistered")
	return r
}

func (r *registryMetrics) Purged() IMetricsTag {
	r.tags = append(r.tags, "purged")
	return r
}

// error metrics
type errorMetrics struct {
	metricsTag
}

func ErrorMetrics(err *xerror.XError) IMetricsTag {
	errMetrics := &errorMetrics{
		metricsTag: metricsTag{[]string{"error", err.Category().Name()}},
	}

	if err.IsRecoverable() {
		errMetrics.tags = append(errMetrics.tags, "recoverable")
	} else if err.IsPanic() {
		errMetrics.tags = append(errMetrics.tags, "panic")
	} else {
		errMetrics.tags = append(errMetrics.tags, "unknown")
	}

	return errMetrics
}

func (e *errorMetrics) Tag() []string {
	return e.tags
}
