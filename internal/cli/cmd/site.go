package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/duskmode/internal/domain/entity"
)

var siteNoApply bool

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Show or edit the override of one site",
	Long: `A site override holds an explicit on/off choice and theme fields layered
over the global theme. Sites are keyed by host: the port and one leading
"www." are ignored, so "https://www.Example.com:8443/a" edits "example.com".

After an edit, open pages of the site are updated through a running
'duskmode serve' unless --no-apply is given.`,
}

var siteShowCmd = &cobra.Command{
	Use:   "show <host|url>",
	Short: "Show a site's override and what applies now",
	Args:  cobra.ExactArgs(1),
	RunE:  runSiteShow,
}

var siteSetCmd = &cobra.Command{
	Use:   "set <host|url> field=value...",
	Short: "Set theme fields of a site",
	Long: `Set theme fields of a site. Fields: bg, surface, text, link, accent, border
(colors like #1a1a1a), brightness, contrast (positive numbers) and font.
"enabled=true|false|default" sets the site's choice in the same call.

Examples:
  duskmode site set example.com bg=#000000 text=#dddddd
  duskmode site set news.ycombinator.com enabled=true contrast=1.2`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSiteSet,
}

var siteEnableCmd = &cobra.Command{
	Use:   "enable <host|url>",
	Short: "Always use dark mode on a site",
	Args:  cobra.ExactArgs(1),
	RunE:  siteChoice(boolPtr(true)),
}

var siteDisableCmd = &cobra.Command{
	Use:   "disable <host|url>",
	Short: "Never use dark mode on a site",
	Args:  cobra.ExactArgs(1),
	RunE:  siteChoice(boolPtr(false)),
}

var siteDefaultCmd = &cobra.Command{
	Use:   "default <host|url>",
	Short: "Let a site follow the global default again",
	Args:  cobra.ExactArgs(1),
	RunE:  siteChoice(nil),
}

var siteResetCmd = &cobra.Command{
	Use:   "reset <host|url>",
	Short: "Remove a site's override entirely",
	Args:  cobra.ExactArgs(1),
	RunE:  runSiteReset,
}

func init() {
	rootCmd.AddCommand(siteCmd)
	siteCmd.AddCommand(siteShowCmd, siteSetCmd, siteEnableCmd, siteDisableCmd, siteDefaultCmd, siteResetCmd)
	for _, c := range []*cobra.Command{siteSetCmd, siteEnableCmd, siteDisableCmd, siteDefaultCmd, siteResetCmd} {
		c.Flags().BoolVar(&siteNoApply, "no-apply", false, "do not update open pages")
	}
}

func boolPtr(b bool) *bool { return &b }

// pageURLFor turns a host argument into a URL the resolver accepts.
func pageURLFor(arg, host string) string {
	if strings.Contains(arg, "://") {
		return arg
	}
	return "https://" + host + "/"
}

func runSiteShow(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	host, err := app.SitesUC.Host(args[0])
	if err != nil {
		return err
	}

	d, err := app.ResolveUC.Execute(app.Ctx(), pageURLFor(args[0], host))
	if err != nil {
		return err
	}
	if d.Fallback {
		app.Println(app.Theme.Notice("settings store unavailable, showing defaults"))
	}
	app.Println(app.Theme.RenderSite(host, d.Site, d.Decision, d.Theme))
	return nil
}

// parseSiteAssignments builds the patch and the optional choice of 'site set'.
func parseSiteAssignments(args []string) (patch *entity.ThemePatch, enabled *bool, clearEnabled bool, err error) {
	assignments, err := parseAssignments(args)
	if err != nil {
		return nil, nil, false, err
	}

	patch = &entity.ThemePatch{}
	for _, kv := range assignments {
		if strings.EqualFold(kv[0], "enabled") {
			switch strings.ToLower(strings.TrimSpace(kv[1])) {
			case "true", "on", "1":
				enabled, clearEnabled = boolPtr(true), false
			case "false", "off", "0":
				enabled, clearEnabled = boolPtr(false), false
			case "default", "":
				enabled, clearEnabled = nil, true
			default:
				return nil, nil, false, fmt.Errorf("enabled must be true, false or default, got %q", kv[1])
			}
			continue
		}

		field, ok := entity.ParseThemeField(kv[0])
		if !ok {
			return nil, nil, false, fmt.Errorf("%w: %q", entity.ErrUnknownSettingKey, kv[0])
		}
		if err := patch.Set(field, kv[1]); err != nil {
			return nil, nil, false, err
		}
	}
	return patch, enabled, clearEnabled, nil
}

func runSiteSet(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	patch, enabled, clearEnabled, err := parseSiteAssignments(args[1:])
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	site, err := app.SitesUC.Save(ctx, args[0], enabled, patch)
	if err != nil {
		return err
	}
	if clearEnabled {
		if _, err := app.SitesUC.SetEnabled(ctx, site.Host, nil); err != nil {
			return err
		}
	}

	app.Println(app.Theme.Success("%s saved", site.Host))
	if !siteNoApply {
		syncPages(site.Host)
	}
	return nil
}

func siteChoice(enabled *bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		host, err := app.SitesUC.Host(args[0])
		if err != nil {
			return err
		}
		if _, err := app.SitesUC.SetEnabled(app.Ctx(), host, enabled); err != nil {
			return err
		}

		switch {
		case enabled == nil:
			app.Println(app.Theme.Success("%s follows the global default", host))
		case *enabled:
			app.Println(app.Theme.Success("%s: dark mode on", host))
		default:
			app.Println(app.Theme.Success("%s: dark mode off", host))
		}
		if !siteNoApply {
			syncPages(host)
		}
		return nil
	}
}

func runSiteReset(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	host, err := app.SitesUC.Host(args[0])
	if err != nil {
		return err
	}
	if err := app.SitesUC.Reset(app.Ctx(), host); err != nil {
		return err
	}
	app.Println(app.Theme.Success("%s override removed", host))
	if !siteNoApply {
		syncPages(host)
	}
	return nil
}
