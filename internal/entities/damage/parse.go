package damage

import (
	"strconv"
	"strings"

	"github.com/chpatton013/dnd-tools/internal/errors"
)

// Parse reads dice notation such as "2d8+1d4+7" into a damage of type t.
// Terms are NdS dice or flat integers joined by "+". A bare "dS" counts one die.
func Parse(t Type, expr string) (*Damage, error) {
	if !t.IsValid() {
		return nil, errors.InvalidArgumentf("invalid damage type %q", t)
	}

	d := Zero(t)
	expr = strings.ReplaceAll(strings.TrimSpace(expr), " ", "")
	if expr == "" || expr == "0" {
		return d, nil
	}

	for _, term := range strings.Split(expr, "+") {
		if err := d.addTerm(term); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %q", expr).
				WithMeta("expression", expr)
		}
	}
	return d, nil
}

func (d *Damage) addTerm(term string) error {
	if term == "" {
		return errors.InvalidArgument("empty term")
	}

	count, face, isDice := strings.Cut(strings.ToLower(term), "d")
	if !isDice {
		base, err := strconv.Atoi(term)
		if err != nil || base < 0 {
			return errors.InvalidArgumentf("invalid flat bonus %q", term)
		}
		d.Base += base
		return nil
	}

	die, ok := DieFromString("d" + face)
	if !ok {
		return errors.InvalidArgumentf("unsupported die %q", "d"+face)
	}

	n := 1
	if count != "" {
		var err error
		n, err = strconv.Atoi(count)
		if err != nil || n < 0 {
			return errors.InvalidArgumentf("invalid dice count %q", count)
		}
	}
	d.Dice[die] += n
	return nil
}
