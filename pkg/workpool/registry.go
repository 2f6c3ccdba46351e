package workpool

import "fmt"

// Registry maps stable handler names to typed function values. It replaces
// string paths resolved at runtime: every ref reaching a worker must have
// been registered here, and wiring code can assert refs up front with
// Validate. Registration happens at startup, before the pool starts; the
// registry is read-only afterwards.
type Registry struct {
	mutations   map[string]MutationHandler
	actions     map[string]ActionHandler
	completions map[string]CompletionHandler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		mutations:   make(map[string]MutationHandler),
		actions:     make(map[string]ActionHandler),
		completions: make(map[string]CompletionHandler),
	}
}

// RegisterMutation registers a mutation handler under ref.
func (r *Registry) RegisterMutation(ref string, h MutationHandler) error {
	if err := r.checkRef(ref); err != nil {
		return err
	}
	r.mutations[ref] = h
	return nil
}

// RegisterAction registers an action handler under ref.
func (r *Registry) RegisterAction(ref string, h ActionHandler) error {
	if err := r.checkRef(ref); err != nil {
		return err
	}
	r.actions[ref] = h
	return nil
}

// RegisterCompletion registers an onComplete mutation under ref. Completion
// refs share the namespace with handlers.
func (r *Registry) RegisterCompletion(ref string, h CompletionHandler) error {
	if err := r.checkRef(ref); err != nil {
		return err
	}
	r.completions[ref] = h
	return nil
}

func (r *Registry) checkRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("empty handler ref")
	}
	if _, dup := r.mutations[ref]; dup {
		return fmt.Errorf("handler ref %q already registered", ref)
	}
	if _, dup := r.actions[ref]; dup {
		return fmt.Errorf("handler ref %q already registered", ref)
	}
	if _, dup := r.completions[ref]; dup {
		return fmt.Errorf("handler ref %q already registered", ref)
	}
	return nil
}

// Mutation resolves a mutation handler.
func (r *Registry) Mutation(ref string) (MutationHandler, bool) {
	h, ok := r.mutations[ref]
	return h, ok
}

// Action resolves an action handler.
func (r *Registry) Action(ref string) (ActionHandler, bool) {
	h, ok := r.actions[ref]
	return h, ok
}

// Completion resolves an onComplete handler.
func (r *Registry) Completion(ref string) (CompletionHandler, bool) {
	h, ok := r.completions[ref]
	return h, ok
}

// Validate checks that every given ref resolves to a registered handler.
// Called at wiring time so a missing handler fails startup, not a delivery.
func (r *Registry) Validate(refs ...string) error {
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if _, ok := r.mutations[ref]; ok {
			continue
		}
		if _, ok := r.actions[ref]; ok {
			continue
		}
		if _, ok := r.completions[ref]; ok {
			continue
		}
		return fmt.Errorf("handler ref %q is not registered", ref)
	}
	return nil
}
