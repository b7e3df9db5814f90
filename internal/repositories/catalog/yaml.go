package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chpatton013/dnd-tools/internal/entities/damage"
	"github.com/chpatton013/dnd-tools/internal/entities/dnd5e"
	"github.com/chpatton013/dnd-tools/internal/entities/equipment"
	"github.com/chpatton013/dnd-tools/internal/errors"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type yamlRepository struct {
	characters     map[string]*dnd5e.Paladin
	characterOrder []string
}

// YAMLConfig contains configuration for the YAML catalog repository.
// With neither Path nor Source set the embedded default catalog is used.
type YAMLConfig struct {
	Path   string
	Source io.Reader
}

// Validate validates the YAMLConfig.
func (cfg *YAMLConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path != "" && cfg.Source != nil {
		return errors.InvalidArgument("only one of path and source may be set")
	}
	return nil
}

// NewYAML decodes the catalog once and builds every character up front
func NewYAML(cfg *YAMLConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source := cfg.Source
	switch {
	case cfg.Path != "":
		f, err := os.Open(cfg.Path)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to open catalog %s", cfg.Path)
		}
		defer func() {
			_ = f.Close() // nolint:errcheck // read-only file
		}()
		source = f
	case source == nil:
		source = bytes.NewReader(defaultCatalog)
	}

	var doc catalogDocument
	decoder := yaml.NewDecoder(source)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	repo, err := doc.build()
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *yamlRepository) GetCharacter(_ context.Context, input GetCharacterInput) (*GetCharacterOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}

	character, ok := r.characters[input.Name]
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.Name).
			WithMeta("character", input.Name)
	}

	return &GetCharacterOutput{Character: character}, nil
}

func (r *yamlRepository) ListCharacters(_ context.Context, _ ListCharactersInput) (*ListCharactersOutput, error) {
	names := make([]string, len(r.characterOrder))
	copy(names, r.characterOrder)
	return &ListCharactersOutput{Names: names}, nil
}

// catalogDocument is the on-disk layout of a catalog file
type catalogDocument struct {
	Weapons    []weaponData    `yaml:"weapons"`
	Characters []characterData `yaml:"characters"`
}

type weaponData struct {
	Name               string       `yaml:"name"`
	CritDiceMultiplier int          `yaml:"crit_dice_multiplier,omitempty"`
	Damage             []damageData `yaml:"damage"`
}

type damageData struct {
	Type string         `yaml:"type"`
	Base int            `yaml:"base,omitempty"`
	Dice map[string]int `yaml:"dice,omitempty"`
}

type characterData struct {
	Name    string   `yaml:"name"`
	Class   string   `yaml:"class"`
	Level   int      `yaml:"level"`
	Weapons []string `yaml:"weapons"`
}

func (doc *catalogDocument) build() (*yamlRepository, error) {
	weapons := make(map[string]*equipment.Weapon, len(doc.Weapons))
	for _, wd := range doc.Weapons {
		w, err := wd.toWeapon()
		if err != nil {
			return nil, err
		}
		weapons[w.Name()] = w
	}

	repo := &yamlRepository{
		characters: make(map[string]*dnd5e.Paladin, len(doc.Characters)),
	}
	for _, cd := range doc.Characters {
		p, err := cd.toPaladin(weapons)
		if err != nil {
			return nil, err
		}
		if _, seen := repo.characters[p.Name()]; !seen {
			repo.characterOrder = append(repo.characterOrder, p.Name())
		}
		repo.characters[p.Name()] = p
	}
	return repo, nil
}

func (wd weaponData) toWeapon() (*equipment.Weapon, error) {
	damages := make([]*damage.Damage, 0, len(wd.Damage))
	for i, dd := range wd.Damage {
		t, ok := damage.TypeFromString(dd.Type)
		if !ok {
			return nil, errors.InvalidArgumentf("weapon %s damage %d: unknown damage type %q", wd.Name, i, dd.Type).
				WithMeta("weapon_name", wd.Name)
		}

		counts := make(map[damage.Die]int, len(dd.Dice))
		for face, count := range dd.Dice {
			die, ok := damage.DieFromString(face)
			if !ok {
				return nil, errors.InvalidArgumentf("weapon %s damage %d: unsupported die %q", wd.Name, i, face).
					WithMeta("weapon_name", wd.Name)
			}
			if count < 0 {
				return nil, errors.InvalidArgumentf("weapon %s damage %d: negative count for %s", wd.Name, i, face).
					WithMeta("weapon_name", wd.Name)
			}
			counts[die] += count
		}
		damages = append(damages, damage.New(t, dd.Base, counts))
	}

	return equipment.NewWeapon(wd.Name, wd.CritDiceMultiplier, damages...)
}

func (cd characterData) toPaladin(weapons map[string]*equipment.Weapon) (*dnd5e.Paladin, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("class", cd.Class, dnd5e.SupportedClasses, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "character %s: unsupported class %q", cd.Name, cd.Class).
			WithMeta("character", cd.Name)
	}

	owned := make([]*equipment.Weapon, 0, len(cd.Weapons))
	for _, name := range cd.Weapons {
		w, ok := weapons[name]
		if !ok {
			return nil, errors.InvalidArgumentf("character %s: unknown weapon %q", cd.Name, name).
				WithMeta("character", cd.Name).
				WithMeta("weapon_name", name)
		}
		owned = append(owned, w)
	}

	return dnd5e.NewPaladin(cd.Name, cd.Level, owned...)
}
