package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/chpatton013/dnd-tools/internal/entities/damage"
	"github.com/chpatton013/dnd-tools/internal/entities/dnd5e"
	"github.com/chpatton013/dnd-tools/internal/entities/equipment"
	"github.com/chpatton013/dnd-tools/internal/errors"
	"github.com/chpatton013/dnd-tools/internal/testutils"
)

type PaladinTestSuite struct {
	suite.Suite
	thursday *dnd5e.Paladin
}

func TestPaladinSuite(t *testing.T) {
	suite.Run(t, new(PaladinTestSuite))
}

func (s *PaladinTestSuite) SetupTest() {
	s.thursday = testutils.CreateTestPaladin()
}

func (s *PaladinTestSuite) TestEntity() {
	s.Assert().Equal(testutils.TestCharacterName, s.thursday.GetID())
	s.Assert().Equal(dnd5e.EntityTypeCharacter, s.thursday.GetType())
	s.Assert().Equal(12, s.thursday.Level())
	s.Assert().Equal([]string{
		testutils.WeaponMjolnir1H,
		testutils.WeaponMjolnir2H,
		testutils.WeaponStormbreaker1H,
		testutils.WeaponStormbreaker2H,
	}, s.thursday.WeaponNames())
}

func (s *PaladinTestSuite) TestLevelTwelveNoCritNoSmite() {
	b, err := s.thursday.Damage(dnd5e.Strike{WeaponName: testutils.WeaponMjolnir1H})
	s.Require().NoError(err)

	s.Assert().Equal([]damage.Type{damage.TypeBludgeoning, damage.TypeRadiant}, b.Types())
	s.Assert().Equal("1d8+7", b.Get(damage.TypeBludgeoning).String())
	s.Assert().Equal(11.5, b.Get(damage.TypeBludgeoning).Expected())
	s.Assert().Equal("1d8", b.Get(damage.TypeRadiant).String())
	s.Assert().Equal(4.5, b.Get(damage.TypeRadiant).Expected())
	s.Assert().Equal(16.0, b.Expected())
}

func (s *PaladinTestSuite) TestLevelTwelveCritSmiteTwo() {
	b, err := s.thursday.Damage(dnd5e.Strike{
		WeaponName: testutils.WeaponMjolnir1H,
		Crit:       true,
		SmiteLevel: 2,
	})
	s.Require().NoError(err)

	s.Assert().Equal("2d8+7", b.Get(damage.TypeBludgeoning).String())
	s.Assert().Equal(7, b.Get(damage.TypeBludgeoning).Base)
	s.Assert().Equal("8d8", b.Get(damage.TypeRadiant).String())
	s.Assert().Equal(36.0, b.Get(damage.TypeRadiant).Expected())
	s.Assert().Equal(16.0+36.0, b.Expected())
}

func (s *PaladinTestSuite) TestBonusDiceDoubleRegardlessOfWeaponMultiplier() {
	b, err := s.thursday.Damage(dnd5e.Strike{
		WeaponName: testutils.WeaponStormbreaker1H,
		Crit:       true,
		SmiteLevel: 1,
	})
	s.Require().NoError(err)

	s.Assert().Equal([]damage.Type{damage.TypeSlashing, damage.TypeLightning, damage.TypeRadiant}, b.Types())
	s.Assert().Equal("3d8+7", b.Get(damage.TypeSlashing).String())
	s.Assert().Equal("3d4", b.Get(damage.TypeLightning).String())
	// (1 + (1+1)) d8, doubled
	s.Assert().Equal("6d8", b.Get(damage.TypeRadiant).String())
}

func (s *PaladinTestSuite) TestBelowImprovedDivineSmite() {
	testCases := []struct {
		name        string
		level       int
		smite       int
		crit        bool
		wantTypes   []damage.Type
		wantRadiant string
	}{
		{
			name:      "level 10 plain hit has no radiant",
			level:     10,
			wantTypes: []damage.Type{damage.TypeBludgeoning},
		},
		{
			name:        "level 10 smite 3",
			level:       10,
			smite:       3,
			wantTypes:   []damage.Type{damage.TypeBludgeoning, damage.TypeRadiant},
			wantRadiant: "4d8",
		},
		{
			name:        "level 10 smite 3 crit",
			level:       10,
			smite:       3,
			crit:        true,
			wantTypes:   []damage.Type{damage.TypeBludgeoning, damage.TypeRadiant},
			wantRadiant: "8d8",
		},
		{
			name:        "level 11 threshold",
			level:       11,
			wantTypes:   []damage.Type{damage.TypeBludgeoning, damage.TypeRadiant},
			wantRadiant: "1d8",
		},
		{
			name:      "level 0",
			level:     0,
			crit:      true,
			wantTypes: []damage.Type{damage.TypeBludgeoning},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p := testutils.CreateTestPaladinAtLevel(tc.level)
			b, err := p.Damage(dnd5e.Strike{
				WeaponName: testutils.WeaponMjolnir1H,
				Crit:       tc.crit,
				SmiteLevel: tc.smite,
			})
			s.Require().NoError(err)
			s.Assert().Equal(tc.wantTypes, b.Types())
			if tc.wantRadiant != "" {
				s.Assert().Equal(tc.wantRadiant, b.Get(damage.TypeRadiant).String())
			}
		})
	}
}

func (s *PaladinTestSuite) TestBonusSharesTypeWithWeapon() {
	sunBlade, err := equipment.NewWeapon("Sun Blade", 0,
		damage.New(damage.TypeRadiant, 2, map[damage.Die]int{damage.D8: 1}),
	)
	s.Require().NoError(err)
	p, err := dnd5e.NewPaladin("Dawn", 11, sunBlade)
	s.Require().NoError(err)

	b, err := p.Damage(dnd5e.Strike{WeaponName: "Sun Blade", Crit: true})
	s.Require().NoError(err)

	s.Assert().Equal([]damage.Type{damage.TypeRadiant}, b.Types())
	// weapon 2d8+2 plus bonus 2d8; base never doubles
	s.Assert().Equal("4d8+2", b.Get(damage.TypeRadiant).String())
}

func (s *PaladinTestSuite) TestRepeatedStrikesAreIndependent() {
	strike := dnd5e.Strike{WeaponName: testutils.WeaponMjolnir2H, Crit: true, SmiteLevel: 3}
	first, err := s.thursday.Damage(strike)
	s.Require().NoError(err)
	first.ScaleDice(100)

	second, err := s.thursday.Damage(strike)
	s.Require().NoError(err)
	s.Assert().Equal("2d10+5", second.Get(damage.TypeBludgeoning).String())
	s.Assert().Equal("10d8", second.Get(damage.TypeRadiant).String())
}

func (s *PaladinTestSuite) TestUnknownWeapon() {
	b, err := s.thursday.Damage(dnd5e.Strike{WeaponName: "Excalibur"})
	s.Require().Error(err)
	s.Assert().Nil(b)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal("Excalibur", errors.GetMeta(err)["weapon_name"])
}

func (s *PaladinTestSuite) TestDuplicateWeaponNamesOverwrite() {
	first, err := equipment.NewWeapon("Hammer", 0, damage.New(damage.TypeBludgeoning, 1, nil))
	s.Require().NoError(err)
	other, err := equipment.NewWeapon("Axe", 0, damage.New(damage.TypeSlashing, 1, nil))
	s.Require().NoError(err)
	second, err := equipment.NewWeapon("Hammer", 0, damage.New(damage.TypeBludgeoning, 9, nil))
	s.Require().NoError(err)

	p, err := dnd5e.NewPaladin("Dup", 1, first, other, second)
	s.Require().NoError(err)

	s.Assert().Equal([]string{"Hammer", "Axe"}, p.WeaponNames())
	w, err := p.Weapon("Hammer")
	s.Require().NoError(err)
	s.Assert().Same(second, w)
}

func (s *PaladinTestSuite) TestWithLevel() {
	lower, err := s.thursday.WithLevel(5)
	s.Require().NoError(err)
	s.Assert().Equal(5, lower.Level())
	s.Assert().Equal(12, s.thursday.Level())
	s.Assert().Equal(s.thursday.WeaponNames(), lower.WeaponNames())

	_, err = s.thursday.WithLevel(-1)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *PaladinTestSuite) TestNewPaladinValidation() {
	_, err := dnd5e.NewPaladin("", 1)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = dnd5e.NewPaladin("Thursday", -1)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = dnd5e.NewPaladin("Thursday", 1, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}
