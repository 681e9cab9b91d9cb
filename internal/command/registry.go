// Package command defines the host command registry the keymap core
// resolves against. The core only ever looks commands up by id, lists
// them, and asks for execution; everything else about the host's command
// system is out of scope.
package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownCommand is returned when executing an id with no registration.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one executable entry in the registry.
type Command struct {
	// ID is the opaque identifier keymaps bind to.
	ID string

	// Name is a human-readable name for listings.
	Name string

	// Run performs the command. May be nil for declaration-only entries.
	Run func(ctx context.Context) error
}

// Registry is the lookup surface the keymap core requires of the host.
type Registry interface {
	// Lookup returns the command registered under id.
	Lookup(id string) (Command, bool)

	// List returns all commands in registration order.
	List() []Command

	// Execute runs the command registered under id.
	Execute(ctx context.Context, id string) error
}

// MemoryRegistry is an in-memory Registry implementation, used by the CLI
// and by tests.
type MemoryRegistry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Command
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{byID: make(map[string]Command)}
}

// Register adds or replaces a command. Registration order is preserved for
// List; re-registering an id keeps its original position.
func (r *MemoryRegistry) Register(cmd Command) error {
	if cmd.ID == "" {
		return fmt.Errorf("cannot register command with empty id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[cmd.ID]; !exists {
		r.order = append(r.order, cmd.ID)
	}
	r.byID[cmd.ID] = cmd
	return nil
}

// Lookup returns the command registered under id.
func (r *MemoryRegistry) Lookup(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byID[id]
	return cmd, ok
}

// List returns all commands in registration order.
func (r *MemoryRegistry) List() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Command, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Execute runs the command registered under id.
func (r *MemoryRegistry) Execute(ctx context.Context, id string) error {
	cmd, ok := r.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, id)
	}
	if cmd.Run == nil {
		return nil
	}
	return cmd.Run(ctx)
}
