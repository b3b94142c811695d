package characterfeatures

import (
	"reflect"
	"slices"
	"testing"

	"github.com/satellite-games/new-horizons-database/internal/blueprint"
	"github.com/satellite-games/new-horizons-database/internal/gameobject"
)

var presetFields = []string{
	"abilitiesMaximum",
	"attributePoints",
	"bonusCredits",
	"interestPoints",
	"name",
	"startExperience",
	"startFatePoints",
	"traitPoints",
	"traitsMaximum",
	"traitsMinimum",
}

func TestCharacterPresetBlueprint_MatchesProjection(t *testing.T) {
	if err := blueprint.Verify[CharacterPreset, CharacterPresetBlueprint](); err != nil {
		t.Fatalf("blueprint drifted from entity: %v", err)
	}
	if got := blueprint.ShapeOf[CharacterPresetBlueprint]().Keys(); !slices.Equal(got, presetFields) {
		t.Fatalf("fields=%v", got)
	}
}

// playablePreset extends the entity with behaviour; the blueprint must not change.
type playablePreset struct {
	CharacterPreset
	OnSelect func(player string) error
}

func (playablePreset) Budget() int { return 0 }

func TestCharacterPresetBlueprint_NoIdentityOrBehaviour(t *testing.T) {
	shape := blueprint.ShapeOf[CharacterPresetBlueprint]()
	if shape.Has("id") {
		t.Fatalf("blueprint must not carry an id")
	}
	for k, typ := range shape {
		if typ.Kind() == reflect.Func {
			t.Fatalf("blueprint must not carry behaviour, found %q", k)
		}
	}
	if err := blueprint.Verify[playablePreset, CharacterPresetBlueprint](); err != nil {
		t.Fatalf("extending the entity with behaviour changed its blueprint: %v", err)
	}
}

func TestCharacterPresetBlueprints_Table(t *testing.T) {
	bps := CharacterPresetBlueprints()
	if len(bps) != 2 {
		t.Fatalf("expected 2 presets, got=%d", len(bps))
	}
	if bps[0].Name != "character-preset/default" || bps[1].Name != "character-preset/hero" {
		t.Fatalf("unexpected order %q %q", bps[0].Name, bps[1].Name)
	}

	def, hero := bps[0], bps[1]
	if def.AttributePoints != 32 || def.StartFatePoints != 1 {
		t.Fatalf("default preset: %+v", def)
	}
	if hero.AbilitiesMaximum != 6 || hero.TraitPoints != 10 {
		t.Fatalf("hero preset: %+v", hero)
	}

	wantDefault := CharacterPresetBlueprint{
		Name: "character-preset/default", AttributePoints: 32, TraitPoints: 0, InterestPoints: 100,
		TraitsMinimum: 5, TraitsMaximum: 15, AbilitiesMaximum: 4, BonusCredits: 0,
		StartExperience: 0, StartFatePoints: 1,
	}
	wantHero := CharacterPresetBlueprint{
		Name: "character-preset/hero", AttributePoints: 35, TraitPoints: 10, InterestPoints: 110,
		TraitsMinimum: 5, TraitsMaximum: 15, AbilitiesMaximum: 6, BonusCredits: 0,
		StartExperience: 0, StartFatePoints: 2,
	}
	if def != wantDefault || hero != wantHero {
		t.Fatalf("table drifted:\n%+v\n%+v", def, hero)
	}
}

func TestCharacterPresetBlueprints_ReturnsCopy(t *testing.T) {
	bps := CharacterPresetBlueprints()
	bps[0].AttributePoints = 0
	if CharacterPresetBlueprints()[0].AttributePoints != 32 {
		t.Fatalf("expected the built-in table to be immutable through the accessor")
	}
}

func TestInstantiateCharacterPreset(t *testing.T) {
	seq := gameobject.NewSequence("preset")
	hero := CharacterPresetBlueprints()[1]

	a := InstantiateCharacterPreset(hero, gameobject.WithIDGenerator(seq.Generator()))
	b := InstantiateCharacterPreset(hero, gameobject.WithIDGenerator(seq.Generator()))

	if a.ID() != "preset-1" || b.ID() != "preset-2" {
		t.Fatalf("ids=%q %q", a.ID(), b.ID())
	}
	if a.Name() != hero.Name || a.AbilitiesMaximum != 6 || a.StartFatePoints != 2 {
		t.Fatalf("instance not seeded: %+v", a)
	}
	if a.Blueprint() != hero {
		t.Fatalf("expected round trip to the template, got=%+v", a.Blueprint())
	}
}

func TestNewCharacterPreset(t *testing.T) {
	p := NewCharacterPreset(gameobject.Init{Name: "x", ID: "fixed-1"})
	if p.ID() != "fixed-1" || p.Name() != "x" {
		t.Fatalf("got id=%q name=%q", p.ID(), p.Name())
	}
	if p.AttributePoints != 0 {
		t.Fatalf("expected zero budgets")
	}
	q := NewCharacterPreset(gameobject.Init{Name: "x"})
	if q.ID() == "" || q.ID() == p.ID() {
		t.Fatalf("expected generated id, got=%q", q.ID())
	}
}
