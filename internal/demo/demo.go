// Package demo holds the Web-IDE example fixtures: small canned programs
// whose transcripts exercise the IDE's execution pipeline. Every fixture is
// deterministic; running one twice yields identical bytes, which is what the
// verify command and the golden tests lean on.
package demo

import "io"

// ProjectName is the host project name interpolated into the welcome lines
// and the metadata payload.
const ProjectName = "AI-IDE"

// fixtureNumbers is the shared 1..5 sequence every fixture transforms.
var fixtureNumbers = []int{1, 2, 3, 4, 5}

// Fixture describes one runnable demo transcript.
type Fixture struct {
	// Name is the registry key (lowercase, e.g. "python").
	Name string

	// Language is the display label (e.g. "Python").
	Language string

	// Description is a one-line summary shown by the list command.
	Description string

	// Write emits the fixture's transcript. The only failure mode is the
	// writer itself; the transcript content is fixed.
	Write func(w io.Writer) error
}

// Registry is an insertion-ordered collection of fixtures.
type Registry struct {
	order    []string
	fixtures map[string]Fixture
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fixtures: make(map[string]Fixture)}
}

// Register adds a fixture. Re-registering a name replaces the fixture but
// keeps its original position.
func (r *Registry) Register(f Fixture) {
	if _, exists := r.fixtures[f.Name]; !exists {
		r.order = append(r.order, f.Name)
	}
	r.fixtures[f.Name] = f
}

// Lookup returns the fixture registered under name.
func (r *Registry) Lookup(name string) (Fixture, bool) {
	f, ok := r.fixtures[name]
	return f, ok
}

// Fixtures returns all fixtures in registration order.
func (r *Registry) Fixtures() []Fixture {
	out := make([]Fixture, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.fixtures[name])
	}
	return out
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// DefaultRegistry returns the built-in fixture set in canonical order.
// Python first: it is what a bare invocation runs.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Fixture{
		Name:        "python",
		Language:    "Python",
		Description: "Arithmetic, squares and a JSON metadata payload",
		Write:       WritePython,
	})
	r.Register(Fixture{
		Name:        "go",
		Language:    "Go",
		Description: "Variables, a slice and a function call",
		Write:       WriteGo,
	})
	r.Register(Fixture{
		Name:        "cpp",
		Language:    "C++",
		Description: "Vector transform and string operations",
		Write:       WriteCPP,
	})
	r.Register(Fixture{
		Name:        "rust",
		Language:    "Rust",
		Description: "Vectors, arithmetic and pattern matching",
		Write:       WriteRust,
	})
	r.Register(Fixture{
		Name:        "java",
		Language:    "Java",
		Description: "Array loops and string operations",
		Write:       WriteJava,
	})
	return r
}
