package entities

import "sort"

// Effect is the on-hit behaviour of a weapon vulnerability.
type Effect string

// Weapon effects.
const (
	EffectNormal   Effect = "normal"
	EffectReflect  Effect = "reflect"
	EffectPassThru Effect = "pass_thru"
	EffectImmune   Effect = "immune"
)

// WeaponVulnerability is how a target reacts to one damage category.
type WeaponVulnerability struct {
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	Effect           Effect  `yaml:"effect"`
	IgnoreRadius     bool    `yaml:"ignore_radius,omitempty"`
}

// Named weapon vulnerability profiles.
var (
	Reflect    = WeaponVulnerability{DamageMultiplier: 0, Effect: EffectReflect}
	Vulnerable = WeaponVulnerability{DamageMultiplier: 100, Effect: EffectNormal}
	Immune     = WeaponVulnerability{DamageMultiplier: 0, Effect: EffectNormal, IgnoreRadius: true}
)

// DamageVulnerability assigns a weapon vulnerability to every damage category.
type DamageVulnerability struct {
	Power               WeaponVulnerability `yaml:"power"`
	Dark                WeaponVulnerability `yaml:"dark"`
	Light               WeaponVulnerability `yaml:"light"`
	Annihilator         WeaponVulnerability `yaml:"annihilator"`
	PowerCharge         WeaponVulnerability `yaml:"power_charge"`
	Entangler           WeaponVulnerability `yaml:"entangler"`
	LightBlast          WeaponVulnerability `yaml:"light_blast"`
	SonicBoom           WeaponVulnerability `yaml:"sonic_boom"`
	SuperMissile        WeaponVulnerability `yaml:"super_missile"`
	BlackHole           WeaponVulnerability `yaml:"black_hole"`
	Sunburst            WeaponVulnerability `yaml:"sunburst"`
	Imploder            WeaponVulnerability `yaml:"imploder"`
	BoostBall           WeaponVulnerability `yaml:"boost_ball"`
	CannonBall          WeaponVulnerability `yaml:"cannon_ball"`
	ScrewAttack         WeaponVulnerability `yaml:"screw_attack"`
	Bomb                WeaponVulnerability `yaml:"bomb"`
	PowerBomb           WeaponVulnerability `yaml:"power_bomb"`
	Missile             WeaponVulnerability `yaml:"missile"`
	Phazon              WeaponVulnerability `yaml:"phazon"`
	AI                  WeaponVulnerability `yaml:"ai"`
	PoisonWater         WeaponVulnerability `yaml:"poison_water"`
	DarkWater           WeaponVulnerability `yaml:"dark_water"`
	Lava                WeaponVulnerability `yaml:"lava"`
	AreaDamageHot       WeaponVulnerability `yaml:"area_damage_hot"`
	AreaDamageCold      WeaponVulnerability `yaml:"area_damage_cold"`
	AreaDamageDark      WeaponVulnerability `yaml:"area_damage_dark"`
	AreaDamageLight     WeaponVulnerability `yaml:"area_damage_light"`
	WeaponVulnerability WeaponVulnerability `yaml:"weapon_vulnerability"`
	NormalSafeZone      WeaponVulnerability `yaml:"normal_safe_zone"`
}

// Categories returns every damage category with its vulnerability, keyed by category name.
func (d DamageVulnerability) Categories() map[string]WeaponVulnerability {
	return map[string]WeaponVulnerability{
		"power":                d.Power,
		"dark":                 d.Dark,
		"light":                d.Light,
		"annihilator":          d.Annihilator,
		"power_charge":         d.PowerCharge,
		"entangler":            d.Entangler,
		"light_blast":          d.LightBlast,
		"sonic_boom":           d.SonicBoom,
		"super_missile":        d.SuperMissile,
		"black_hole":           d.BlackHole,
		"sunburst":             d.Sunburst,
		"imploder":             d.Imploder,
		"boost_ball":           d.BoostBall,
		"cannon_ball":          d.CannonBall,
		"screw_attack":         d.ScrewAttack,
		"bomb":                 d.Bomb,
		"power_bomb":           d.PowerBomb,
		"missile":              d.Missile,
		"phazon":               d.Phazon,
		"ai":                   d.AI,
		"poison_water":         d.PoisonWater,
		"dark_water":           d.DarkWater,
		"lava":                 d.Lava,
		"area_damage_hot":      d.AreaDamageHot,
		"area_damage_cold":     d.AreaDamageCold,
		"area_damage_dark":     d.AreaDamageDark,
		"area_damage_light":    d.AreaDamageLight,
		"weapon_vulnerability": d.WeaponVulnerability,
		"normal_safe_zone":     d.NormalSafeZone,
	}
}

// CategoriesWith returns the sorted category names assigned exactly v.
func (d DamageVulnerability) CategoriesWith(v WeaponVulnerability) []string {
	var names []string
	for name, cv := range d.Categories() {
		if cv == v {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ResistAllVuln reflects beam and charge damage and is immune to everything else.
var ResistAllVuln = DamageVulnerability{
	Power: Reflect, Dark: Reflect, Light: Reflect, Annihilator: Reflect,
	PowerCharge: Reflect, Entangler: Reflect, LightBlast: Reflect, SonicBoom: Reflect,
	SuperMissile: Reflect, BlackHole: Reflect, Sunburst: Reflect, Imploder: Reflect,

	BoostBall: Immune, CannonBall: Immune, ScrewAttack: Immune, Bomb: Immune, PowerBomb: Immune,
	Missile: Immune, Phazon: Reflect, AI: Immune, PoisonWater: Immune, DarkWater: Immune, Lava: Immune,
	AreaDamageHot: Immune, AreaDamageCold: Immune, AreaDamageDark: Immune, AreaDamageLight: Immune,
	WeaponVulnerability: Immune, NormalSafeZone: Immune,
}

// DamageProfiles lists the named damage-vulnerability profiles.
var DamageProfiles = map[string]DamageVulnerability{
	"resist_all_vuln": ResistAllVuln,
}

// WeaponProfiles lists the named weapon-vulnerability profiles.
var WeaponProfiles = map[string]WeaponVulnerability{
	"reflect":    Reflect,
	"vulnerable": Vulnerable,
	"immune":     Immune,
}
