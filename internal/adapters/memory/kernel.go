// Package memory is an in-memory stand-in for the Solid Edge kernel. It
// implements the ports surface with deterministic collections and injectable
// failures, backing the test suite and the --kernel=memory demo transport.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
)

// Kernel resolves the active document, like the live application object.
type Kernel struct {
	mu         sync.Mutex
	doc        *Document
	resolveErr error
}

// NewKernel creates a Kernel with a fresh empty part document.
func NewKernel() *Kernel {
	return &Kernel{doc: NewDocument("Part1")}
}

// ActiveDocument implements ports.DocumentResolver.
func (k *Kernel) ActiveDocument(ctx context.Context) (ports.Document, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.resolveErr != nil {
		return nil, k.resolveErr
	}
	return k.doc, nil
}

// SetDocument swaps the active document, simulating a window switch.
func (k *Kernel) SetDocument(d *Document) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.doc = d
}

// FailResolve makes ActiveDocument fail with err until called with nil.
func (k *Kernel) FailResolve(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.resolveErr = err
}

// Document is a fake part document with the three base reference planes.
type Document struct {
	name     string
	planes   []*RefPlane
	bodies   []*Body
	features *FeatureRecorder

	// AddProfileErr, when set, fails profile creation.
	AddProfileErr error
}

// NewDocument creates a document named name with the Top/Front/Right base
// planes and no solid geometry.
func NewDocument(name string) *Document {
	return &Document{
		name:     name,
		planes:   []*RefPlane{{name: "Top"}, {name: "Front"}, {name: "Right"}},
		features: &FeatureRecorder{},
	}
}

func (d *Document) Name() string { return d.name }

// AddPlane appends a user-created reference plane.
func (d *Document) AddPlane(name string) { d.planes = append(d.planes, &RefPlane{name: name}) }

// AddBody attaches a solid body to the document.
func (d *Document) AddBody(b *Body) { d.bodies = append(d.bodies, b) }

// RefPlanes implements ports.Document.
func (d *Document) RefPlanes() ports.Collection {
	items := make([]any, len(d.planes))
	for i, p := range d.planes {
		items[i] = p
	}
	return &SliceCollection{Items: items}
}

// Body returns the first body, mirroring the kernel's first-model lookup.
func (d *Document) Body() (ports.Body, error) {
	if len(d.bodies) == 0 {
		return nil, errors.New("document has no solid geometry")
	}
	return d.bodies[0], nil
}

// Bodies implements ports.Document.
func (d *Document) Bodies() ports.Collection {
	items := make([]any, len(d.bodies))
	for i, b := range d.bodies {
		items[i] = b
	}
	return &SliceCollection{Items: items}
}

// AddProfile implements ports.Document.
func (d *Document) AddProfile(plane ports.RefPlane) (ports.Profile, error) {
	if d.AddProfileErr != nil {
		return nil, d.AddProfileErr
	}
	return &Profile{plane: plane}, nil
}

// Features implements ports.Document.
func (d *Document) Features() ports.FeatureOps { return d.features }

// Recorder exposes the document's feature recorder for assertions.
func (d *Document) Recorder() *FeatureRecorder { return d.features }

// RefPlane is a named fake reference plane.
type RefPlane struct {
	name string
}

func (p *RefPlane) Name() string { return p.name }

// SliceCollection adapts a slice to the 1-based live-collection port, with
// injectable enumeration failures.
type SliceCollection struct {
	Items    []any
	CountErr error
	ItemErr  error
}

// Count implements ports.Collection.
func (c *SliceCollection) Count() (int, error) {
	if c.CountErr != nil {
		return 0, c.CountErr
	}
	return len(c.Items), nil
}

// Item implements ports.Collection. i is 1-based.
func (c *SliceCollection) Item(i int) (any, error) {
	if c.ItemErr != nil {
		return nil, c.ItemErr
	}
	if i < 1 || i > len(c.Items) {
		return nil, errors.New("item index out of bounds")
	}
	return c.Items[i-1], nil
}
