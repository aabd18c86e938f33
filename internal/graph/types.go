package graph

// EntityKind represents the kind of a declared type.
type EntityKind string

const (
	// KindAggregate is a data-carrying type (struct-like): fields plus
	// receiver-bound methods.
	KindAggregate EntityKind = "aggregate"
	// KindContract is a behavior-only type (interface-like): method
	// signatures only.
	KindContract EntityKind = "contract"
)

// Field is a named data member of an aggregate entity.
type Field struct {
	Name string
	Type string // raw type expression, as written in source
}

// Method is a method signature. Params and Returns hold the raw source
// text; satisfaction inference compares names only.
type Method struct {
	Name    string
	Params  string
	Returns string
}

// Entity represents a named type extracted from source.
type Entity struct {
	Name    string
	Kind    EntityKind
	Fields  []Field
	Methods []Method
	Embeds  []string // embedded type names, source order, deduplicated

	// declared is set once the entity's body has been seen. A later
	// declaration of the same name does not change the kind.
	declared bool
}

// RelationKind represents the kind of a directed relationship edge.
type RelationKind string

const (
	// RelComposition is embedded-entity -> embedding-entity, recorded from
	// bare identifier lines inside declaration bodies.
	RelComposition RelationKind = "composition"
	// RelSatisfaction is contract-entity -> aggregate-entity, inferred by
	// method-name containment.
	RelSatisfaction RelationKind = "satisfaction"
)

// Relation is a directed edge between two entities.
type Relation struct {
	From string
	To   string
	Kind RelationKind
}

// Model holds the entity table and relationship set for one extraction run.
// It is transient: rebuilt from scratch on every run, never shared between
// runs. Entities iterate in first-seen order, relations in insertion order;
// relations are deduplicated.
type Model struct {
	entities map[string]*Entity
	order    []string

	relations []Relation
	relSeen   map[Relation]bool
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{
		entities: make(map[string]*Entity),
		relSeen:  make(map[Relation]bool),
	}
}

// GetOrCreate returns the entity for name, creating a placeholder
// (kind aggregate, no members) on first reference. A placeholder models a
// type declared outside the visible source window.
func (m *Model) GetOrCreate(name string) *Entity {
	if e, ok := m.entities[name]; ok {
		return e
	}
	e := &Entity{Name: name, Kind: KindAggregate}
	m.entities[name] = e
	m.order = append(m.order, name)
	return e
}

// Declare records a declaration with a body for name, setting the kind.
// The first declaration seen wins; a repeated declaration keeps the
// original kind.
func (m *Model) Declare(name string, kind EntityKind) *Entity {
	e := m.GetOrCreate(name)
	if !e.declared {
		e.Kind = kind
		e.declared = true
	}
	return e
}

// Entity returns the entity for name, or nil if never referenced.
func (m *Model) Entity(name string) *Entity {
	return m.entities[name]
}

// Entities returns all entities in first-seen order.
func (m *Model) Entities() []*Entity {
	out := make([]*Entity, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.entities[name])
	}
	return out
}

// Len returns the number of entities in the model.
func (m *Model) Len() int {
	return len(m.order)
}

// AddRelation appends a relation, dropping exact duplicates.
func (m *Model) AddRelation(r Relation) {
	if m.relSeen[r] {
		return
	}
	m.relSeen[r] = true
	m.relations = append(m.relations, r)
}

// Relations returns all relations in insertion order.
func (m *Model) Relations() []Relation {
	return m.relations
}

// AddEmbed records an embedded type name on e, preserving order and
// skipping repeats.
func (e *Entity) AddEmbed(name string) {
	for _, existing := range e.Embeds {
		if existing == name {
			return
		}
	}
	e.Embeds = append(e.Embeds, name)
}
