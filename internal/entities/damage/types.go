package damage

// Type tags a contribution of damage; merging and grouping key off it
type Type string

// Damage types
const (
	TypeSlashing    Type = "slashing"
	TypePiercing    Type = "piercing"
	TypeBludgeoning Type = "bludgeoning"
	TypePoison      Type = "poison"
	TypeAcid        Type = "acid"
	TypeFire        Type = "fire"
	TypeCold        Type = "cold"
	TypeRadiant     Type = "radiant"
	TypeNecrotic    Type = "necrotic"
	TypeLightning   Type = "lightning"
	TypeThunder     Type = "thunder"
	TypeForce       Type = "force"
	TypePsychic     Type = "psychic"
)

// String returns the string representation of the damage type
func (t Type) String() string {
	return string(t)
}

// IsValid checks if the damage type is valid
func (t Type) IsValid() bool {
	switch t {
	case TypeSlashing, TypePiercing, TypeBludgeoning, TypePoison, TypeAcid,
		TypeFire, TypeCold, TypeRadiant, TypeNecrotic, TypeLightning,
		TypeThunder, TypeForce, TypePsychic:
		return true
	default:
		return false
	}
}

// AllTypes returns a slice of all valid damage types
func AllTypes() []Type {
	return []Type{
		TypeSlashing,
		TypePiercing,
		TypeBludgeoning,
		TypePoison,
		TypeAcid,
		TypeFire,
		TypeCold,
		TypeRadiant,
		TypeNecrotic,
		TypeLightning,
		TypeThunder,
		TypeForce,
		TypePsychic,
	}
}

// TypeFromString converts a string to a Type
// Returns the type and true if valid, empty type and false if invalid
func TypeFromString(s string) (Type, bool) {
	t := Type(s)
	if t.IsValid() {
		return t, true
	}
	return "", false
}
