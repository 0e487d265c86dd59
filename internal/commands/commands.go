package commands

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Command is one demos subcommand. Run sees the values parsed into FlagSet.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry maps subcommand names to commands.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns a registry with no commands.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first command-line argument (e.g. "spawner").
// run is only called once fs has parsed the remaining arguments without error.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage returns one line per command: name and summary.
func (r *Registry) Usage() string {
	var b strings.Builder
	for _, n := range r.Names() {
		fmt.Fprintf(&b, "  %-10s %s\n", n, r.cmds[n].Summary)
	}
	return b.String()
}

// Execute dispatches on args[0] and parses args[1:] into that command's flags before running it.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run()
}
