package action

import (
	"github.com/sirupsen/logrus"
)

// Manager maps names to root actions and drives every one of them once per
// external tick. Roots that reach Finished during a tick are removed
// automatically; canceled roots stay until an explicit Stop or StopAll.
//
// The Manager is single-threaded by contract: all calls must come from the
// goroutine that owns the host loop, and listeners must not mutate the
// Manager while its own Update is iterating.
type Manager struct {
	actions map[string]Action
	logger  *logrus.Logger
}

// NewManager creates an empty manager. A nil logger falls back to a fresh
// logrus logger.
func NewManager(logger *logrus.Logger) *Manager {
	if logger == nil {
		logger = logrus.New()
	}

	return &Manager{
		actions: make(map[string]Action),
		logger:  logger,
	}
}

// Start registers a root action under name and starts it. If the name is
// already taken the call is a no-op and the new action is never started.
func (m *Manager) Start(name string, a Action) {
	if _, exists := m.actions[name]; exists {
		m.logger.WithField("name", name).Debug("Action name already registered, ignoring")
		return
	}

	m.actions[name] = a
	a.Start()
	m.logger.WithField("name", name).Debug("Action registered and started")
}

// Pause forwards to the named action. Unknown names are a no-op.
func (m *Manager) Pause(name string) {
	if a, ok := m.actions[name]; ok {
		a.Pause()
	}
}

// PauseAll pauses every registered action.
func (m *Manager) PauseAll() {
	for _, a := range m.actions {
		a.Pause()
	}
	m.logger.WithField("count", len(m.actions)).Debug("Paused all actions")
}

// Resume forwards to the named action. Unknown names are a no-op.
func (m *Manager) Resume(name string) {
	if a, ok := m.actions[name]; ok {
		a.Resume()
	}
}

// ResumeAll resumes every registered action.
func (m *Manager) ResumeAll() {
	for _, a := range m.actions {
		a.Resume()
	}
	m.logger.WithField("count", len(m.actions)).Debug("Resumed all actions")
}

// Stop cancels the named action and removes it. Unknown names are a no-op.
func (m *Manager) Stop(name string) {
	a, ok := m.actions[name]
	if !ok {
		return
	}
	a.Stop()
	delete(m.actions, name)
	m.logger.WithField("name", name).Debug("Action stopped and removed")
}

// StopAll cancels and removes every registered action.
func (m *Manager) StopAll() {
	for name, a := range m.actions {
		a.Stop()
		delete(m.actions, name)
	}
	m.logger.Debug("Stopped all actions")
}

// Update advances every registered action by delta and removes the ones that
// reached Finished. Canceled actions are not removed here.
func (m *Manager) Update(delta float64) {
	for name, a := range m.actions {
		a.Update(delta)
		if a.IsFinished() {
			delete(m.actions, name)
			m.logger.WithField("name", name).Debug("Action finished, removed")
		}
	}
}

// ActionName returns the stored key for name, or the empty string when no
// such action is registered.
func (m *Manager) ActionName(name string) string {
	if _, ok := m.actions[name]; ok {
		return name
	}
	return ""
}

// Size returns the number of registered actions.
func (m *Manager) Size() int {
	return len(m.actions)
}

// Exists reports whether an action is registered under name.
func (m *Manager) Exists(name string) bool {
	_, ok := m.actions[name]
	return ok
}
