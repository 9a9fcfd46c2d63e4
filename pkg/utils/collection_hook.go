package utils

import (
	"github.com/modern-go/gls"
	"github.com/sirupsen/logrus"
)

const collectionField = "collection"

// Hook tags log entries with the collection name bound to the current
// goroutine by SetLogCollection.
type Hook struct {
	Field  string
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	if name := gls.Get(hook.Field); name != nil {
		entry.Data[hook.Field] = name
	}
	return nil
}

func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  collectionField,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// SetLogCollection binds name to the current goroutine for the Hook.
func SetLogCollection(name string) {
	gls.ResetGls(gls.GoID(), map[interface{}]interface{}{})
	gls.Set(collectionField, name)
}

func ClearLogCollection() {
	gls.DeleteGls(gls.GoID())
}
