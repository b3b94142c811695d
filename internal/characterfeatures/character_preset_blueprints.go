package characterfeatures

var characterPresetBlueprints = []CharacterPresetBlueprint{
	{
		Name:             "character-preset/default",
		AttributePoints:  32,
		TraitPoints:      0,
		InterestPoints:   100,
		TraitsMinimum:    5,
		TraitsMaximum:    15,
		AbilitiesMaximum: 4,
		BonusCredits:     0,
		StartExperience:  0,
		StartFatePoints:  1,
	},
	{
		Name:             "character-preset/hero",
		AttributePoints:  35,
		TraitPoints:      10,
		InterestPoints:   110,
		TraitsMinimum:    5,
		TraitsMaximum:    15,
		AbilitiesMaximum: 6,
		BonusCredits:     0,
		StartExperience:  0,
		StartFatePoints:  2,
	},
}

// CharacterPresetBlueprints returns a copy of the built-in character presets in
// table order.
func CharacterPresetBlueprints() []CharacterPresetBlueprint {
	out := make([]CharacterPresetBlueprint, len(characterPresetBlueprints))
	copy(out, characterPresetBlueprints)
	return out
}
