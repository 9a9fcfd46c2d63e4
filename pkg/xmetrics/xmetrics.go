package xmetrics

import (
	"github.com/hashicorp/go-metrics"
	"github.com/hashicorp/go-metrics/prometheus"
	"github.com/selectdb/observable_list/pkg/xerror"
)

func InitGlobal(serviceName string) error {
	sink, err := prometheus.NewPrometheusSink()
	if err != nil {
		return xerror.Wrap(err, xerror.Normal, "init prometheus sink failed")
	}

	if _, err := metrics.NewGlobal(metrics.DefaultConfig(serviceName), sink); err != nil {
		return xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}

	return nil
}

func AddError(err *xerror.XError) {
	metrics.IncrCounter(ErrorMetrics(err).Tag(), 1)
}

// Dispatch records one notification of the given kind delivered to n observers.
func Dispatch(kind string, n int) {
	metrics.IncrCounter(DispatchMetrics(kind).Dispatches().Tag(), 1)
	metrics.IncrCounter(DispatchMetrics(kind).Deliveries().Tag(), float32(n))
}

func Register(mode string) {
	metrics.IncrCounter(RegistryMetrics().Registered(mode).Tag(), 1)
}

func Unregister(n int) {
	if n == 0 {
		return
	}
	metrics.IncrCounter(RegistryMetrics().Unregistered().Tag(), float32(n))
}

func PurgeStale(n int) {
	if n == 0 {
		return
	}
	metrics.IncrCounter(RegistryMetrics().Purged().Tag(), float32(n))
}
