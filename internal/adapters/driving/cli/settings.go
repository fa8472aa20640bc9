package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

// settingKind is how a setting's value is parsed and stored.
type settingKind int

const (
	settingString settingKind = iota
	settingBool
	settingList
)

type settingKey struct {
	key         string
	kind        settingKind
	description string
}

// settingKeys lists the settable keys in display order.
var settingKeys = []settingKey{
	{domain.KeySchemaPaths, settingList, "template files loaded over the built-in table"},
	{domain.KeySeedVolume, settingBool, "convert with a volume identifier and unit abbreviations"},
	{domain.KeyStrict, settingBool, "fail a conversion when any group is dropped"},
	{domain.KeyStorageDir, settingString, "document archive directory"},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Shows the configuration file and every known setting. Use the get and
set subcommands to read or change a single key.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE...",
	Short: "Change one setting",
	Long: `Changes one setting and writes the configuration file.

Boolean keys take true or false. schema.paths takes one or more paths,
separately or comma-separated; an empty string clears it.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func lookupSetting(key string) (settingKey, error) {
	for _, k := range settingKeys {
		if k.key == key {
			return k, nil
		}
	}
	known := make([]string, 0, len(settingKeys))
	for _, k := range settingKeys {
		known = append(known, k.key)
	}
	return settingKey{}, fmt.Errorf("%w: unknown setting %q (known: %s)",
		domain.ErrInvalidInput, key, strings.Join(known, ", "))
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())
	for _, k := range settingKeys {
		cmd.Printf("  %-20s = %-24s # %s\n", k.key, formatSetting(k), k.description)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	k, err := lookupSetting(args[0])
	if err != nil {
		return err
	}
	cmd.Println(formatSetting(k))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	k, err := lookupSetting(args[0])
	if err != nil {
		return err
	}
	value, err := parseSetting(k, args[1:])
	if err != nil {
		return err
	}
	if err := configStore.Set(k.key, value); err != nil {
		return fmt.Errorf("saving %s: %w", k.key, err)
	}
	cmd.Printf("%s = %s\n", k.key, formatSetting(k))
	return nil
}

func parseSetting(k settingKey, values []string) (any, error) {
	switch k.kind {
	case settingBool:
		if len(values) != 1 {
			return nil, fmt.Errorf("%w: %s takes one value", domain.ErrInvalidInput, k.key)
		}
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, k.key, values[0])
		}
		return b, nil
	case settingList:
		list := make([]string, 0, len(values))
		for _, v := range values {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					list = append(list, part)
				}
			}
		}
		return list, nil
	default:
		if len(values) != 1 {
			return nil, fmt.Errorf("%w: %s takes one value", domain.ErrInvalidInput, k.key)
		}
		return values[0], nil
	}
}

func formatSetting(k settingKey) string {
	switch k.kind {
	case settingBool:
		return strconv.FormatBool(configStore.GetBool(k.key))
	case settingList:
		return strings.Join(configStore.GetStringSlice(k.key), ",")
	default:
		return configStore.GetString(k.key)
	}
}
