package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/assetids/internal/application/handlers"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles [NAME]",
		Short: "Show the damage and weapon vulnerability profiles",
		Long: `Without a name, lists every profile. With a name, prints the damage profile
grouped by weapon profile, or the weapon profile itself.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return writeProfile(cmd.OutOrStdout(), handlers.NewProfileHandler(), name)
		},
	}
}

// writeProfile writes the profile list, or the named profile, as YAML.
func writeProfile(w io.Writer, h *handlers.ProfileHandler, name string) error {
	if name == "" {
		return encode(w, "yaml", h.List())
	}

	damage, err := h.Damage(name)
	if err == nil {
		return encode(w, "yaml", damage)
	}
	if !errors.Is(err, handlers.ErrProfileNotFound) {
		return err
	}

	weapon, err := h.Weapon(name)
	if err != nil {
		return err
	}
	return encode(w, "yaml", map[string]any{name: weapon})
}
