// Package characterfeatures holds the game objects used during character creation.
package characterfeatures

import (
	"github.com/satellite-games/new-horizons-database/internal/blueprint"
	"github.com/satellite-games/new-horizons-database/internal/gameobject"
)

// CharacterPresetKind is the registry kind of character presets.
const CharacterPresetKind = "character-preset"

// CharacterPreset fixes the point budgets and limits a new character starts with.
type CharacterPreset struct {
	gameobject.GameObject

	AttributePoints  int
	TraitPoints      int
	InterestPoints   int
	TraitsMinimum    int
	TraitsMaximum    int
	AbilitiesMaximum int
	BonusCredits     int
	StartExperience  int
	StartFatePoints  int
}

// CharacterPresetBlueprint is the template of a CharacterPreset: its data fields
// without the instance id. Keep it in step with CharacterPreset; the tests and
// the game database verify both with blueprint.Verify.
type CharacterPresetBlueprint struct {
	Name             string `mapstructure:"name" json:"name" yaml:"name"`
	AttributePoints  int    `mapstructure:"attributePoints" json:"attributePoints" yaml:"attributePoints"`
	TraitPoints      int    `mapstructure:"traitPoints" json:"traitPoints" yaml:"traitPoints"`
	InterestPoints   int    `mapstructure:"interestPoints" json:"interestPoints" yaml:"interestPoints"`
	TraitsMinimum    int    `mapstructure:"traitsMinimum" json:"traitsMinimum" yaml:"traitsMinimum"`
	TraitsMaximum    int    `mapstructure:"traitsMaximum" json:"traitsMaximum" yaml:"traitsMaximum"`
	AbilitiesMaximum int    `mapstructure:"abilitiesMaximum" json:"abilitiesMaximum" yaml:"abilitiesMaximum"`
	BonusCredits     int    `mapstructure:"bonusCredits" json:"bonusCredits" yaml:"bonusCredits"`
	StartExperience  int    `mapstructure:"startExperience" json:"startExperience" yaml:"startExperience"`
	StartFatePoints  int    `mapstructure:"startFatePoints" json:"startFatePoints" yaml:"startFatePoints"`
}

var _ blueprint.Named = CharacterPresetBlueprint{}

func (b CharacterPresetBlueprint) BlueprintName() string {
	return b.Name
}

// NewCharacterPreset creates a preset with zero budgets.
func NewCharacterPreset(init gameobject.Init, opts ...gameobject.Option) *CharacterPreset {
	return &CharacterPreset{GameObject: gameobject.New(init, opts...)}
}

// InstantiateCharacterPreset creates a new preset instance seeded from bp. Every
// call yields a fresh id.
func InstantiateCharacterPreset(bp CharacterPresetBlueprint, opts ...gameobject.Option) *CharacterPreset {
	p := NewCharacterPreset(gameobject.Init{Name: bp.Name}, opts...)
	p.AttributePoints = bp.AttributePoints
	p.TraitPoints = bp.TraitPoints
	p.InterestPoints = bp.InterestPoints
	p.TraitsMinimum = bp.TraitsMinimum
	p.TraitsMaximum = bp.TraitsMaximum
	p.AbilitiesMaximum = bp.AbilitiesMaximum
	p.BonusCredits = bp.BonusCredits
	p.StartExperience = bp.StartExperience
	p.StartFatePoints = bp.StartFatePoints
	return p
}

// Blueprint returns the template p was (or could have been) created from.
func (p *CharacterPreset) Blueprint() CharacterPresetBlueprint {
	return CharacterPresetBlueprint{
		Name:             p.Name(),
		AttributePoints:  p.AttributePoints,
		TraitPoints:      p.TraitPoints,
		InterestPoints:   p.InterestPoints,
		TraitsMinimum:    p.TraitsMinimum,
		TraitsMaximum:    p.TraitsMaximum,
		AbilitiesMaximum: p.AbilitiesMaximum,
		BonusCredits:     p.BonusCredits,
		StartExperience:  p.StartExperience,
		StartFatePoints:  p.StartFatePoints,
	}
}
