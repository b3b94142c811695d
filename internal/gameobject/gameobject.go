// Package gameobject defines what every game object is: the name of the blueprint
// it derives from and an identifier unique to the instance.
package gameobject

// GameObject is an entity in the game world. Concrete kinds embed it and add
// their own data fields.
//
// name is the key of the blueprint in the game database; many instances share it.
// id is set once by New and never changes.
type GameObject struct {
	name string
	id   string
}

// Init is the construction input. ID is optional; the empty string means the
// identifier is generated.
type Init struct {
	Name string
	ID   string
}

type options struct {
	idGen IDGenerator
}

type Option func(*options)

// WithIDGenerator replaces the default identifier source for one construction.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *options) {
		if gen != nil {
			o.idGen = gen
		}
	}
}

// New creates a game object. Name is stored verbatim and never validated.
func New(init Init, opts ...Option) GameObject {
	o := options{idGen: DefaultIDGenerator}
	for _, opt := range opts {
		opt(&o)
	}

	id := init.ID
	if id == "" {
		id = o.idGen()
	}
	return GameObject{name: init.Name, id: id}
}

// Name returns the blueprint key.
func (o GameObject) Name() string {
	return o.name
}

// ID returns the instance identifier.
func (o GameObject) ID() string {
	return o.id
}
