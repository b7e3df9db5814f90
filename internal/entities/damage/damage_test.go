package damage_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/chpatton013/dnd-tools/internal/entities/damage"
	"github.com/chpatton013/dnd-tools/internal/errors"
	"github.com/chpatton013/dnd-tools/internal/testutils"
)

type DamageTestSuite struct {
	suite.Suite
}

func TestDamageSuite(t *testing.T) {
	suite.Run(t, new(DamageTestSuite))
}

func (s *DamageTestSuite) TestNewCopiesDice() {
	counts := map[damage.Die]int{damage.D8: 1}
	d := damage.New(damage.TypeBludgeoning, 7, counts)

	counts[damage.D8] = 5
	s.Assert().Equal(1, d.DiceCount(damage.D8))
	s.Assert().Equal(7, d.Base)
}

func (s *DamageTestSuite) TestMerge() {
	d := damage.New(damage.TypeSlashing, 7, map[damage.Die]int{damage.D8: 1})
	other := damage.New(damage.TypeSlashing, 2, map[damage.Die]int{damage.D8: 2, damage.D4: 1})

	s.Require().NoError(d.Merge(other))

	s.Assert().Equal(9, d.Base)
	s.Assert().Equal(3, d.DiceCount(damage.D8))
	s.Assert().Equal(1, d.DiceCount(damage.D4))

	// other is unchanged
	s.Assert().Equal(2, other.Base)
	s.Assert().Equal(2, other.DiceCount(damage.D8))
}

func (s *DamageTestSuite) TestMergeOrderIndependent() {
	build := func() []*damage.Damage {
		return []*damage.Damage{
			damage.New(damage.TypeFire, 1, map[damage.Die]int{damage.D6: 2}),
			damage.New(damage.TypeFire, 0, map[damage.Die]int{damage.D8: 1}),
			damage.New(damage.TypeFire, 3, map[damage.Die]int{damage.D6: 1, damage.D4: 4}),
		}
	}

	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}, {1, 2, 0}}
	var results []*damage.Damage
	for _, order := range orders {
		parts := build()
		acc := damage.Zero(damage.TypeFire)
		for _, i := range order {
			s.Require().NoError(acc.Merge(parts[i]))
		}
		results = append(results, acc)
	}

	for _, r := range results[1:] {
		s.Assert().Equal(results[0].Base, r.Base)
		s.Assert().Equal(results[0].Dice, r.Dice)
	}
	s.Assert().Equal(4, results[0].Base)
	s.Assert().Equal(3, results[0].DiceCount(damage.D6))
}

func (s *DamageTestSuite) TestMergeTypeMismatch() {
	fire := damage.New(damage.TypeFire, 2, map[damage.Die]int{damage.D6: 1})
	cold := damage.New(damage.TypeCold, 3, map[damage.Die]int{damage.D8: 1})

	err := fire.Merge(cold)
	s.Require().Error(err)
	s.Assert().True(damage.IsTypeMismatch(err))
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Equal("fire", errors.GetMeta(err)["expected_type"])
	s.Assert().Equal("cold", errors.GetMeta(err)["actual_type"])

	// neither operand changes
	s.Assert().Equal(2, fire.Base)
	s.Assert().Equal(map[damage.Die]int{damage.D6: 1}, fire.Dice)
	s.Assert().Equal(3, cold.Base)
	s.Assert().Equal(map[damage.Die]int{damage.D8: 1}, cold.Dice)
}

func (s *DamageTestSuite) TestMergeNil() {
	err := damage.Zero(damage.TypeFire).Merge(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().False(damage.IsTypeMismatch(err))
}

func (s *DamageTestSuite) TestScaleDiceLeavesBase() {
	d := damage.New(damage.TypeSlashing, 7, map[damage.Die]int{damage.D8: 1, damage.D4: 2})
	d.ScaleDice(3)

	s.Assert().Equal(7, d.Base)
	s.Assert().Equal(3, d.DiceCount(damage.D8))
	s.Assert().Equal(6, d.DiceCount(damage.D4))
}

func (s *DamageTestSuite) TestExpected() {
	d := damage.New(damage.TypeBludgeoning, 7, map[damage.Die]int{damage.D8: 1})
	s.Assert().Equal(11.5, d.Expected())

	d = damage.New(damage.TypeRadiant, 0, map[damage.Die]int{damage.D8: 8})
	s.Assert().Equal(36.0, d.Expected())

	s.Assert().Equal(0.0, damage.Zero(damage.TypeAcid).Expected())
}

func (s *DamageTestSuite) TestRoll() {
	d := damage.New(damage.TypeSlashing, 5, map[damage.Die]int{damage.D10: 1, damage.D4: 2})
	// largest die first: d10, then 2d4
	roller := testutils.NewManualRoller(9, 1, 4)

	total, err := d.Roll(roller)
	s.Require().NoError(err)
	s.Assert().Equal(5+9+1+4, total)
	s.Assert().Equal(0, roller.Remaining())
}

func (s *DamageTestSuite) TestRollZeroDamageSkipsRoller() {
	roller := testutils.NewManualRoller()

	for i := 0; i < 10; i++ {
		total, err := damage.Zero(damage.TypeForce).Roll(roller)
		s.Require().NoError(err)
		s.Assert().Equal(0, total)
	}

	total, err := damage.New(damage.TypeForce, 4, map[damage.Die]int{damage.D6: 0}).Roll(roller)
	s.Require().NoError(err)
	s.Assert().Equal(4, total)
	s.Assert().Equal(0, roller.Calls())
}

func (s *DamageTestSuite) TestRollPropagatesRollerError() {
	d := damage.New(damage.TypeCold, 0, map[damage.Die]int{damage.D6: 2})
	_, err := d.Roll(testutils.NewManualRoller(3))
	s.Assert().Error(err)
}

func (s *DamageTestSuite) TestString() {
	testCases := []struct {
		name     string
		damage   *damage.Damage
		expected string
	}{
		{
			name:     "dice and base",
			damage:   damage.New(damage.TypeBludgeoning, 7, map[damage.Die]int{damage.D8: 1}),
			expected: "1d8+7",
		},
		{
			name:     "several dice largest first",
			damage:   damage.New(damage.TypeSlashing, 0, map[damage.Die]int{damage.D4: 1, damage.D10: 2}),
			expected: "2d10+1d4",
		},
		{
			name:     "base only",
			damage:   damage.New(damage.TypeSlashing, 3, nil),
			expected: "3",
		},
		{
			name:     "negative base is not rendered",
			damage:   damage.New(damage.TypeSlashing, -1, map[damage.Die]int{damage.D6: 1}),
			expected: "1d6",
		},
		{
			name:     "zero counts are skipped",
			damage:   damage.New(damage.TypeFire, 0, map[damage.Die]int{damage.D6: 0, damage.D8: 2}),
			expected: "2d8",
		},
		{
			name:     "all zero",
			damage:   damage.Zero(damage.TypeFire),
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, tc.damage.String())
		})
	}
}

func (s *DamageTestSuite) TestCloneIsIndependent() {
	d := damage.New(damage.TypePiercing, 2, map[damage.Die]int{damage.D6: 1})
	c := d.Clone()
	c.ScaleDice(2)
	c.Base = 10

	s.Assert().Equal(1, d.DiceCount(damage.D6))
	s.Assert().Equal(2, d.Base)
}

func (s *DamageTestSuite) TestIsZero() {
	s.Assert().True(damage.Zero(damage.TypePsychic).IsZero())
	s.Assert().True(damage.New(damage.TypePsychic, 0, map[damage.Die]int{damage.D4: 0}).IsZero())
	s.Assert().False(damage.New(damage.TypePsychic, 1, nil).IsZero())
}
