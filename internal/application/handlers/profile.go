package handlers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// ErrProfileNotFound is returned for an unknown profile name.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileHandler exposes the named vulnerability profiles.
type ProfileHandler struct{}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// ProfileList names the available profiles.
type ProfileList struct {
	Damage []string `yaml:"damage"`
	Weapon []string `yaml:"weapon"`
}

// DamageProfileSummary groups the categories of a damage profile by the
// weapon profile assigned to them.
type DamageProfileSummary struct {
	Name       string                                  `yaml:"name"`
	ByProfile  map[string][]string                     `yaml:"by_profile"`
	Categories map[string]entities.WeaponVulnerability `yaml:"categories"`
}

// List returns the profile names in ascending order.
func (h *ProfileHandler) List() ProfileList {
	list := ProfileList{}
	for name := range entities.DamageProfiles {
		list.Damage = append(list.Damage, name)
	}
	for name := range entities.WeaponProfiles {
		list.Weapon = append(list.Weapon, name)
	}
	sort.Strings(list.Damage)
	sort.Strings(list.Weapon)
	return list
}

// Damage returns the summary of a damage profile.
func (h *ProfileHandler) Damage(name string) (*DamageProfileSummary, error) {
	profile, ok := entities.DamageProfiles[name]
	if !ok {
		return nil, fmt.Errorf("damage profile %q: %w", name, ErrProfileNotFound)
	}

	summary := &DamageProfileSummary{
		Name:       name,
		ByProfile:  make(map[string][]string),
		Categories: profile.Categories(),
	}
	for weaponName, weapon := range entities.WeaponProfiles {
		if categories := profile.CategoriesWith(weapon); len(categories) > 0 {
			summary.ByProfile[weaponName] = categories
		}
	}
	return summary, nil
}

// Weapon returns a weapon profile.
func (h *ProfileHandler) Weapon(name string) (entities.WeaponVulnerability, error) {
	profile, ok := entities.WeaponProfiles[name]
	if !ok {
		return entities.WeaponVulnerability{}, fmt.Errorf("weapon profile %q: %w", name, ErrProfileNotFound)
	}
	return profile, nil
}
