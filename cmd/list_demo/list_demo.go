package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/selectdb/observable_list/pkg/binding"
	"github.com/selectdb/observable_list/pkg/collection"
	"github.com/selectdb/observable_list/pkg/observable"
	"github.com/selectdb/observable_list/pkg/utils"
	"github.com/selectdb/observable_list/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
)

var (
	version     bool
	items       string
	metricsAddr string
	failFast    bool
)

func init() {
	flag.BoolVar(&version, "version", false, "The program's version")
	flag.StringVar(&items, "items", "a,b,c,d", "comma separated initial items")
	flag.StringVar(&metricsAddr, "metrics_addr", "", "serve prometheus metrics on this address and wait for a signal")
	flag.BoolVar(&failFast, "fail_fast", false, "let observer panics abort the dispatch")
	flag.Parse()

	utils.InitLog()
}

// loggingObserver prints every event it receives.
type loggingObserver struct {
	name string
}

func (o *loggingObserver) OnItemInserted(index int) {
	log.Infof("%s: item inserted at %d", o.name, index)
}

func (o *loggingObserver) OnItemRemoved(index int) {
	log.Infof("%s: item removed at %d", o.name, index)
}

func (o *loggingObserver) OnItemChanged(index int) {
	log.Infof("%s: item changed at %d", o.name, index)
}

func (o *loggingObserver) OnItemsReloaded() {
	log.Infof("%s: items reloaded", o.name)
}

type row struct {
	label string
}

func dispatcherOptions() []observable.DispatcherOption {
	if failFast {
		return []observable.DispatcherOption{observable.WithFailurePolicy(observable.PropagateFailures)}
	}
	return []observable.DispatcherOption{
		observable.WithFailureHandler(func(event observable.Event, observer observable.ItemsObserver, err error) {
			log.Warnf("observer %T failed on %s, continue", observer, event)
		}),
	}
}

func runList(initial []string) error {
	utils.SetLogCollection("list")
	defer utils.ClearLogCollection()

	list := collection.NewNotifyingList(initial, dispatcherOptions()...)
	observer := &loggingObserver{name: "list"}
	list.AddObserver(observer)

	list.Add("e")
	if err := list.Insert(0, "first"); err != nil {
		return err
	}
	if _, err := list.Set(1, "A"); err != nil {
		return err
	}
	if _, err := list.RemoveAt(list.Len() - 1); err != nil {
		return err
	}
	list.Sort(strings.Compare)

	if list.Len() >= 3 {
		sub, err := list.SubList(1, 3)
		if err != nil {
			return err
		}
		sub.AddObserver(&loggingObserver{name: "sub_list"})
		if _, err := sub.Set(0, "x"); err != nil {
			return err
		}
	}

	if _, err := list.Get(list.Len()); err != nil {
		log.Infof("expected bounds error: %v", err)
	}

	log.Infof("list: %v", list.ToSlice())
	list.RemoveObserver(observer)
	return nil
}

func runDataSource(initial []string) error {
	utils.SetLogCollection("data_source")
	defer utils.ClearLogCollection()

	ds := collection.NewMutableDataSource(initial, dispatcherOptions()...)
	adapter := binding.NewAdapter[string, row](ds,
		func() *row { return &row{} },
		func(r *row, item string) { r.label = strings.ToUpper(item) },
		func() { log.Infof("data_source: data set changed, count: %d", ds.Len()) },
		binding.WithItemCallbacks(
			func(index int) { log.Infof("data_source: row inserted at %d", index) },
			func(index int) { log.Infof("data_source: row removed at %d", index) },
		),
	)
	adapter.Attach()
	defer adapter.Detach()

	rows := make([]*row, 0, adapter.Count())
	for i := 0; i < adapter.Count(); i++ {
		r, err := adapter.View(i, nil)
		if err != nil {
			return err
		}
		rows = append(rows, r)
	}

	if len(rows) > 0 {
		if _, err := ds.Set(0, "changed"); err != nil {
			return err
		}
		log.Infof("data_source: row 0 rebound to %s", rows[0].label)
	}
	ds.Append("tail")
	if _, err := ds.RemoveAt(0); err != nil {
		return err
	}
	ds.Replace([]string{"x", "y"})
	log.Infof("data_source: %v, live rows: %d", ds.Items(), adapter.LiveViews())
	return nil
}

func serveMetrics() {
	if err := xmetrics.InitGlobal("observable-list"); err != nil {
		log.Fatalf("init metrics failed: %+v", err)
	}

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(metricsAddr, nil); err != nil {
			log.Fatalf("metrics service start error: %+v", err)
		}
	}()
	log.Infof("serve metrics on %s", metricsAddr)
}

func main() {
	if version {
		printVersion()
	}

	log.Infof("list demo start, version: %s", getVersion())

	if metricsAddr != "" {
		serveMetrics()
	}

	var initial []string
	if items != "" {
		initial = strings.Split(items, ",")
	}

	if err := runList(initial); err != nil {
		log.Fatalf("run list error: %+v", err)
	}
	if err := runDataSource(append([]string(nil), initial...)); err != nil {
		log.Fatalf("run data source error: %+v", err)
	}

	if metricsAddr == "" {
		return
	}

	signalMux := NewSignalMux(func(signal os.Signal) bool {
		switch signal {
		case syscall.SIGHUP:
			log.Info("receive SIGHUP, keep serving metrics")
			return false
		default:
			fmt.Println("bye")
			return true
		}
	})
	signalMux.Serve()
}
