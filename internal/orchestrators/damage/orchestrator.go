// Package damage implements the damage orchestrator: it loads a character from
// the catalog, resolves a strike and optionally rolls the result.
package damage

//go:generate mockgen -destination=mock/mock_service.go -package=damagemock github.com/chpatton013/dnd-tools/internal/orchestrators/damage Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/chpatton013/dnd-tools/internal/entities/damage"
	"github.com/chpatton013/dnd-tools/internal/entities/dnd5e"
	"github.com/chpatton013/dnd-tools/internal/errors"
	"github.com/chpatton013/dnd-tools/internal/pkg/clock"
	"github.com/chpatton013/dnd-tools/internal/pkg/idgen"
	"github.com/chpatton013/dnd-tools/internal/repositories/catalog"
)

// Service defines the interface for damage operations
type Service interface {
	CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error)
	ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
}

// Event context keys set on published damage roll events
const (
	ContextKeyRollID     = "roll_id"
	ContextKeyWeapon     = "weapon"
	ContextKeyIsCritical = "is_critical"
	ContextKeySmiteLevel = "smite_level"
	ContextKeyDamage     = "damage"
	ContextKeyExpected   = "damage_expected"
)

// Config holds the dependencies for the damage orchestrator
type Config struct {
	CatalogRepo catalog.Repository
	DiceRoller  dice.Roller
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo catalog.Repository
	diceRoller  dice.Roller
	eventBus    events.EventBus
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new damage orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalogRepo: cfg.CatalogRepo,
		diceRoller:  cfg.DiceRoller,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// CalculateDamage resolves a strike into per-type expected damage, rolling it
// when requested. Nothing is returned unless every step succeeds.
func (o *orchestrator) CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_name", input.CharacterName, vb)
	errors.ValidateRequired("weapon_name", input.WeaponName, vb)
	errors.ValidateRange("smite_level", input.SmiteLevel, 0, dnd5e.MaxSmiteLevel, vb)
	if input.Level != nil && *input.Level < 0 {
		vb.Field("level", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.CharacterName, input.Level)
	if err != nil {
		return nil, err
	}

	breakdown, err := character.Damage(dnd5e.Strike{
		WeaponName: input.WeaponName,
		Crit:       input.Crit,
		SmiteLevel: input.SmiteLevel,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s strike", input.WeaponName)
	}

	lines := linesFor(breakdown)
	output := &CalculateDamageOutput{
		RollID:        o.idGen.Generate(),
		CalculatedAt:  o.clock.Now(),
		CharacterName: character.Name(),
		WeaponName:    input.WeaponName,
		Level:         character.Level(),
		Lines:         lines,
		TotalExpected: breakdown.Expected(),
		Breakdown:     breakdown,
	}

	if input.Roll {
		rolled, err := breakdown.Roll(o.diceRoller)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll damage")
		}
		for i := range output.Lines {
			output.Lines[i].Rolled = rolled[output.Lines[i].Type]
			output.TotalRolled += output.Lines[i].Rolled
		}
		output.Rolled = true

		if err := o.publishRoll(ctx, character, input, output); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "Damage calculated",
		"roll_id", output.RollID,
		"character", output.CharacterName,
		"weapon", output.WeaponName,
		"crit", input.Crit,
		"smite_level", input.SmiteLevel,
		"expected", output.TotalExpected,
		"rolled", output.Rolled,
		"total_rolled", output.TotalRolled,
	)

	return output, nil
}

// ListWeapons summarizes the weapons a character carries, in catalog order
func (o *orchestrator) ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	character, err := o.loadCharacter(ctx, input.CharacterName, nil)
	if err != nil {
		return nil, err
	}

	output := &ListWeaponsOutput{
		CharacterName: character.Name(),
		Level:         character.Level(),
	}
	for _, name := range character.WeaponNames() {
		weapon, err := character.Weapon(name)
		if err != nil {
			return nil, err
		}
		breakdown, err := weapon.Damage(false)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to summarize %s", name)
		}
		output.Weapons = append(output.Weapons, WeaponSummary{
			Name:               name,
			Damage:             linesFor(breakdown),
			CritDiceMultiplier: weapon.CritDiceMultiplier(),
			Expected:           breakdown.Expected(),
		})
	}

	slog.DebugContext(ctx, "Listed weapons",
		"character", output.CharacterName,
		"count", len(output.Weapons),
	)

	return output, nil
}

// ListCharacters summarizes every catalog character, in catalog order
func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listed, err := o.catalogRepo.ListCharacters(ctx, catalog.ListCharactersInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	output := &ListCharactersOutput{
		Characters: make([]CharacterSummary, 0, len(listed.Names)),
	}
	for _, name := range listed.Names {
		character, err := o.loadCharacter(ctx, name, nil)
		if err != nil {
			return nil, err
		}
		output.Characters = append(output.Characters, CharacterSummary{
			Name:        character.Name(),
			Level:       character.Level(),
			WeaponNames: character.WeaponNames(),
		})
	}

	return output, nil
}

func (o *orchestrator) loadCharacter(ctx context.Context, name string, level *int) (*dnd5e.Paladin, error) {
	out, err := o.catalogRepo.GetCharacter(ctx, catalog.GetCharacterInput{Name: name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", name)
	}

	character := out.Character
	if level != nil {
		character, err = character.WithLevel(*level)
		if err != nil {
			return nil, err
		}
	}
	return character, nil
}

// publishRoll announces a rolled strike on the event bus
func (o *orchestrator) publishRoll(ctx context.Context, character *dnd5e.Paladin, input *CalculateDamageInput, output *CalculateDamageOutput) error {
	event := events.NewGameEvent(events.EventAfterDamage, character, nil)
	event.Context().Set(ContextKeyRollID, output.RollID)
	event.Context().Set(ContextKeyWeapon, output.WeaponName)
	event.Context().Set(ContextKeyIsCritical, input.Crit)
	event.Context().Set(ContextKeySmiteLevel, input.SmiteLevel)
	event.Context().Set(ContextKeyDamage, output.TotalRolled)
	event.Context().Set(ContextKeyExpected, output.TotalExpected)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish damage roll")
	}
	return nil
}

func linesFor(breakdown *damage.Breakdown) []Line {
	lines := make([]Line, 0, breakdown.Len())
	for _, t := range breakdown.Types() {
		d := breakdown.Get(t)
		lines = append(lines, Line{
			Type:       t,
			Expression: d.String(),
			Expected:   d.Expected(),
		})
	}
	return lines
}
