// Package gamedb is the game database: it registers the available blueprint
// tables, built-in and file based, and spawns game objects from them.
package gamedb

import (
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/satellite-games/new-horizons-database/internal/blueprint"
	"github.com/satellite-games/new-horizons-database/internal/characterfeatures"
	"github.com/satellite-games/new-horizons-database/internal/gameobject"
	"github.com/satellite-games/new-horizons-database/modules/kit/logx"
)

type Database struct {
	log   logx.Logger
	idGen gameobject.IDGenerator

	presets *blueprint.Registry[characterfeatures.CharacterPresetBlueprint]

	// mu serialises loads and reloads; lookups only touch the registries.
	mu        sync.Mutex
	builtin   []characterfeatures.CharacterPresetBlueprint
	fileOrder []string
	files     map[string][]characterfeatures.CharacterPresetBlueprint
	// watchers holds the viper of each loaded file until Watch hands it over.
	watchers map[string]*viper.Viper
}

type Option func(*Database)

// WithIDGenerator sets the identifier source used by the Spawn methods.
func WithIDGenerator(gen gameobject.IDGenerator) Option {
	return func(d *Database) {
		d.idGen = gen
	}
}

func New(log logx.Logger, opts ...Option) *Database {
	if log == nil {
		log = logx.Nop()
	}
	d := &Database{
		log:      log,
		presets:  blueprint.NewRegistry[characterfeatures.CharacterPresetBlueprint](characterfeatures.CharacterPresetKind),
		files:    make(map[string][]characterfeatures.CharacterPresetBlueprint),
		watchers: make(map[string]*viper.Viper),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// LoadBuiltin registers the tables compiled into the binary. It fails when a
// blueprint type no longer matches its entity.
func (d *Database) LoadBuiltin() error {
	if err := blueprint.Verify[characterfeatures.CharacterPreset, characterfeatures.CharacterPresetBlueprint](); err != nil {
		logx.ReportError(d.log, "verify character preset blueprint", err)
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	bps := characterfeatures.CharacterPresetBlueprints()
	if err := d.presets.Register(bps...); err != nil {
		logx.ReportError(d.log, "register built-in character presets", err)
		return err
	}
	d.builtin = append(d.builtin, bps...)
	d.log.Info("built-in blueprint table loaded",
		zap.String("kind", characterfeatures.CharacterPresetKind),
		zap.Int("count", len(bps)),
	)
	return nil
}

// CharacterPreset returns the registered character preset blueprint called name.
func (d *Database) CharacterPreset(name string) (characterfeatures.CharacterPresetBlueprint, error) {
	return d.presets.Lookup(name)
}

// CharacterPresets returns all registered character preset blueprints in
// registration order.
func (d *Database) CharacterPresets() []characterfeatures.CharacterPresetBlueprint {
	return d.presets.List()
}

// SpawnCharacterPreset instantiates the character preset blueprint called name.
func (d *Database) SpawnCharacterPreset(name string, opts ...gameobject.Option) (*characterfeatures.CharacterPreset, error) {
	bp, err := d.presets.Lookup(name)
	if err != nil {
		return nil, err
	}
	if d.idGen != nil {
		opts = append([]gameobject.Option{gameobject.WithIDGenerator(d.idGen)}, opts...)
	}
	p := characterfeatures.InstantiateCharacterPreset(bp, opts...)
	d.log.Debug("game object spawned",
		zap.String("kind", characterfeatures.CharacterPresetKind),
		zap.String("name", p.Name()),
		zap.String("id", p.ID()),
	)
	return p, nil
}

// LogTemplates writes one entry per registered blueprint.
func (d *Database) LogTemplates() {
	for _, bp := range d.presets.List() {
		d.log.Info("blueprint registered",
			zap.String("kind", characterfeatures.CharacterPresetKind),
			zap.String("name", bp.Name),
			zap.Any("blueprint", bp),
		)
	}
}
