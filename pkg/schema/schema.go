package schema

import (
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/fieldcheck/go-sdk/pkg/checker"
)

// Schema is an immutable validation tree built from a definition. It owns
// no per-call state, so one Schema can serve concurrent Check calls as long
// as each call validates a distinct value.
type Schema struct {
	root   *node
	logger logrus.FieldLogger
}

// node is either a leaf holding a checker or an interior field mapping.
type node struct {
	leaf   checker.Checker
	fields map[string]*node
	keys   []string // sorted; fixes traversal order, and with it which violation surfaces first
}

// Option configures a Schema at construction time.
type Option func(*Schema)

// WithLogger attaches a logger the engine uses for Debug-level traversal
// tracing (pruned fields, failures). Validation results never depend on it.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Schema) {
		s.logger = logger
	}
}

// New builds a Schema from a definition: a checker.Checker, or a
// map[string]any whose values are themselves definitions. Anything else is
// rejected eagerly with an invalidSchema error naming the offending node.
func New(definition any, opts ...Option) (*Schema, error) {
	s := &Schema{}
	for _, opt := range opts {
		opt(s)
	}
	root, err := buildNode(definition, "")
	if err != nil {
		return nil, err
	}
	s.root = root
	return s, nil
}

func buildNode(definition any, path string) (*node, error) {
	switch def := definition.(type) {
	case checker.Checker:
		return &node{leaf: def}, nil
	case map[string]any:
		n := &node{
			fields: make(map[string]*node, len(def)),
			keys:   make([]string, 0, len(def)),
		}
		for key := range def {
			n.keys = append(n.keys, key)
		}
		sort.Strings(n.keys)
		for _, key := range n.keys {
			child, err := buildNode(def[key], joinPath(path, key))
			if err != nil {
				return nil, err
			}
			n.fields[key] = child
		}
		return n, nil
	default:
		return nil, checker.NewInvalidSchema(path)
	}
}

// CheckOptions controls a single validation pass.
type CheckOptions struct {
	// Sanitize lets checkers rewrite accepted values in place.
	Sanitize bool

	// Partial skips mandatory-field enforcement, for partial updates.
	Partial bool
}

// Check validates value against the schema and returns it, enabling
// chaining. Fields not declared in the schema are deleted from the value;
// in sanitize mode checker results are additionally written back in place.
// The first violation at any depth aborts the pass with a *checker.Error.
func (s *Schema) Check(value any, opts CheckOptions) (any, error) {
	ctx := checker.Context{Partial: opts.Partial, Sanitize: opts.Sanitize}

	if s.root.leaf != nil {
		result, err := s.root.leaf(value, &ctx)
		if err != nil {
			s.logFailure(err)
			return nil, err
		}
		if ctx.Sanitize && result != nil {
			return result, nil
		}
		return value, nil
	}

	if err := s.walk(s.root, value, ctx); err != nil {
		s.logFailure(err)
		return nil, err
	}
	return value, nil
}

// walk validates an interior node. The schema's fields are the allow-list:
// undeclared keys are deleted from the value before any field is checked.
func (s *Schema) walk(n *node, value any, ctx checker.Context) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return checker.NewInvalid(ctx.Path)
	}

	for key := range obj {
		if _, declared := n.fields[key]; !declared {
			s.logPrune(ctx.Path, key)
			delete(obj, key)
		}
	}

	for _, key := range n.keys {
		child := n.fields[key]
		childCtx := ctx.Child(key)

		if child.leaf != nil {
			result, err := child.leaf(obj[key], &childCtx)
			if err != nil {
				return err
			}
			if ctx.Sanitize && result != nil {
				obj[key] = result
			}
			continue
		}

		if err := s.walk(child, obj[key], childCtx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) logPrune(path, key string) {
	if s.logger == nil {
		return
	}
	s.logger.WithField("path", joinPath(path, key)).Debug("pruned undeclared field")
}

func (s *Schema) logFailure(err error) {
	if s.logger == nil {
		return
	}
	var cerr *checker.Error
	if errors.As(err, &cerr) {
		s.logger.WithFields(logrus.Fields{
			"kind": cerr.Kind,
			"path": cerr.Path,
		}).Debug("validation failed")
		return
	}
	s.logger.WithError(err).Debug("validation failed")
}

// joinPath joins dotted path segments for error reporting.
func joinPath(base, segment string) string {
	if base == "" {
		return segment
	}
	return base + "." + segment
}
