package observable

// Subject pairs a Registry with the Dispatcher that notifies it, and a
// default registration mode. Collections and data sources keep one each.
type Subject struct {
	registry   *Registry
	dispatcher *Dispatcher
	mode       Mode
}

func NewSubject(name string, mode Mode, opts ...DispatcherOption) *Subject {
	return &Subject{
		registry:   NewRegistry(name),
		dispatcher: NewDispatcher(opts...),
		mode:       mode,
	}
}

// Fork returns a subject with an empty registry that shares this subject's
// dispatcher and default mode.
func (s *Subject) Fork(name string) *Subject {
	return &Subject{
		registry:   NewRegistry(name),
		dispatcher: s.dispatcher,
		mode:       s.mode,
	}
}

func (s *Subject) Registry() *Registry {
	return s.registry
}

func (s *Subject) Mode() Mode {
	return s.mode
}

func (s *Subject) Register(o ItemsObserver) {
	s.registry.Register(o, s.mode)
}

func (s *Subject) RegisterMode(o ItemsObserver, mode Mode) {
	s.registry.Register(o, mode)
}

func (s *Subject) Unregister(o ItemsObserver) {
	s.registry.Unregister(o)
}

func (s *Subject) Notify(event Event) {
	s.dispatcher.Notify(s.registry, event)
}

func (s *Subject) UnregisterAll(o ItemsObserver) {
	s.registry.UnregisterAll(o)
}
