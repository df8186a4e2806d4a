// Package script builds action trees from declarative YAML documents. A
// document names one root node; nodes nest sequence/any/all groups around
// wait, call, and when leaves. Callbacks and flags referenced by name are
// resolved against host-supplied bindings at load time.
package script

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/playloop/action/pkg/action"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript reports a script document that cannot be built.
var ErrInvalidScript = errors.New("script: invalid document")

// Bindings supplies the host-side callbacks and flags a script may reference.
type Bindings struct {
	// Funcs maps call names to zero-argument callbacks.
	Funcs map[string]func()
	// Flags maps when names to bool referents owned by the host. The host
	// must keep each referent alive for the script's whole lifetime.
	Flags map[string]*bool
}

// Document is the top-level YAML shape.
type Document struct {
	Name   string `yaml:"name"`
	Action Node   `yaml:"action"`
}

// Node is one action in a script document. Exactly one field must be set.
type Node struct {
	// Wait is a timed delay in seconds.
	Wait *float64 `yaml:"wait,omitempty"`
	// Call names a bound callback to invoke once.
	Call string `yaml:"call,omitempty"`
	// When waits for a bound flag to reach a value.
	When *WhenNode `yaml:"when,omitempty"`

	Sequence []Node `yaml:"sequence,omitempty"`
	Any      []Node `yaml:"any,omitempty"`
	All      []Node `yaml:"all,omitempty"`
}

// WhenNode waits for the named host flag. Equals defaults to true when
// omitted.
type WhenNode struct {
	Flag   string `yaml:"flag"`
	Equals *bool  `yaml:"equals,omitempty"`
}

// Script pairs a built root action with its registry name.
type Script struct {
	Name string
	Root action.Action
}

// Load parses one YAML document and builds its action tree against the given
// bindings. Documents without a name get a generated one.
func Load(data []byte, bindings Bindings) (*Script, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("script: parse yaml: %w", err)
	}

	root, err := buildNode(doc.Action, bindings)
	if err != nil {
		return nil, err
	}

	name := doc.Name
	if name == "" {
		name = "script-" + uuid.NewString()
	}

	return &Script{Name: name, Root: root}, nil
}

// Register starts the script's root action under its name.
func (s *Script) Register(m *action.Manager) {
	m.Start(s.Name, s.Root)
}

func buildNode(node Node, bindings Bindings) (action.Action, error) {
	if err := validateKinds(node); err != nil {
		return nil, err
	}

	switch {
	case node.Wait != nil:
		if *node.Wait < 0 {
			return nil, fmt.Errorf("%w: negative wait %v", ErrInvalidScript, *node.Wait)
		}
		return action.NewDelay(*node.Wait), nil

	case node.Call != "":
		fn, ok := bindings.Funcs[node.Call]
		if !ok {
			return nil, fmt.Errorf("%w: unbound call %q", ErrInvalidScript, node.Call)
		}
		return action.NewCall(fn), nil

	case node.When != nil:
		flag, ok := bindings.Flags[node.When.Flag]
		if !ok {
			return nil, fmt.Errorf("%w: unbound flag %q", ErrInvalidScript, node.When.Flag)
		}
		want := true
		if node.When.Equals != nil {
			want = *node.When.Equals
		}
		return action.NewCondition(flag, want), nil

	case node.Sequence != nil:
		children, err := buildChildren(node.Sequence, bindings)
		if err != nil {
			return nil, err
		}
		return action.NewSequence(children...), nil

	case node.Any != nil:
		children, err := buildChildren(node.Any, bindings)
		if err != nil {
			return nil, err
		}
		return action.NewWaitAny(children...), nil

	case node.All != nil:
		children, err := buildChildren(node.All, bindings)
		if err != nil {
			return nil, err
		}
		return action.NewWaitAll(children...), nil

	default:
		return nil, fmt.Errorf("%w: node sets no kind", ErrInvalidScript)
	}
}

func buildChildren(nodes []Node, bindings Bindings) ([]action.Action, error) {
	children := make([]action.Action, 0, len(nodes))
	for _, n := range nodes {
		child, err := buildNode(n, bindings)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func validateKinds(node Node) error {
	kinds := 0
	if node.Wait != nil {
		kinds++
	}
	if node.Call != "" {
		kinds++
	}
	if node.When != nil {
		kinds++
	}
	if node.Sequence != nil {
		kinds++
	}
	if node.Any != nil {
		kinds++
	}
	if node.All != nil {
		kinds++
	}
	if kinds > 1 {
		return fmt.Errorf("%w: node sets %d kinds, want one", ErrInvalidScript, kinds)
	}
	return nil
}
