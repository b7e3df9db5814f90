package damage

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/chpatton013/dnd-tools/internal/errors"
)

// Breakdown groups damage by type, remembering the order types were first seen
type Breakdown struct {
	order  []Type
	byType map[Type]*Damage
}

// NewBreakdown returns an empty breakdown
func NewBreakdown() *Breakdown {
	return &Breakdown{
		byType: make(map[Type]*Damage),
	}
}

// Add folds d into the entry for its type, starting from Zero on first sight.
// d itself is never retained or modified.
func (b *Breakdown) Add(d *Damage) error {
	if d == nil {
		return errors.InvalidArgument("cannot add nil damage")
	}

	entry, ok := b.byType[d.Type]
	if !ok {
		entry = Zero(d.Type)
		b.byType[d.Type] = entry
		b.order = append(b.order, d.Type)
	}
	return entry.Merge(d)
}

// Merge folds every entry of other into b
func (b *Breakdown) Merge(other *Breakdown) error {
	if other == nil {
		return nil
	}
	for _, t := range other.order {
		if err := b.Add(other.byType[t]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the entry for a type, or nil if the type is absent
func (b *Breakdown) Get(t Type) *Damage {
	return b.byType[t]
}

// Types returns the present types in first-seen order
func (b *Breakdown) Types() []Type {
	out := make([]Type, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of distinct types
func (b *Breakdown) Len() int {
	return len(b.order)
}

// ScaleDice multiplies the dice counts of every entry
func (b *Breakdown) ScaleDice(multiplier int) {
	for _, t := range b.order {
		b.byType[t].ScaleDice(multiplier)
	}
}

// Expected returns the expected total across all types
func (b *Breakdown) Expected() float64 {
	var total float64
	for _, t := range b.order {
		total += b.byType[t].Expected()
	}
	return total
}

// Roll rolls every type in order and returns the per-type results
func (b *Breakdown) Roll(roller dice.Roller) (map[Type]int, error) {
	rolled := make(map[Type]int, len(b.order))
	for _, t := range b.order {
		value, err := b.byType[t].Roll(roller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s damage", t)
		}
		rolled[t] = value
	}
	return rolled, nil
}

// Clone returns a deep copy
func (b *Breakdown) Clone() *Breakdown {
	out := NewBreakdown()
	for _, t := range b.order {
		out.order = append(out.order, t)
		out.byType[t] = b.byType[t].Clone()
	}
	return out
}
