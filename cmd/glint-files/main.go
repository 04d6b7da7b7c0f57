package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"glint"
)

// Action identifiers for the browser. Keys map to these through the
// registry; the config file can rebind any of them.
const (
	actionSwitchPane = "files.switch-pane"
	actionView       = "files.view"
	actionRun        = "files.run"
	actionCopy       = "files.copy"
	actionMove       = "files.move"
	actionMkdir      = "files.mkdir"
	actionDelete     = "files.delete"
	actionMark       = "files.mark"
	actionMenu       = "files.menu"
	actionReload     = "files.reload"
	actionHelp       = "files.help"
	actionOptions    = "files.options"
)

var (
	flagConfig string
	flagTheme  string
	flagPath   string
)

var rootCmd = &cobra.Command{
	Use:   "glint-files",
	Short: "Dual-pane terminal file browser",
	Long: `glint-files is a keyboard-driven dual-pane file browser in the
orthodox style: Tab switches panes, function keys copy, move and delete,
and commands run in a background screen with live output.`,
	RunE:          runBrowser,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the key binding table",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := glint.NewRegistry()
		registerDefaultBindings(reg)
		cfg, err := glint.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		if err := cfg.Apply(reg); err != nil {
			return err
		}
		fmt.Print(renderKeysListing(reg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", defaultConfigPath(), "config file (TOML)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "theme: dark, light or monochrome")
	rootCmd.Flags().StringVar(&flagPath, "path", "", "start directory (default: cwd)")
	rootCmd.AddCommand(keysCmd)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "glint-files", "config.toml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "glint-files:", err)
		os.Exit(1)
	}
}

func runBrowser(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdin and stdout must be a terminal")
	}

	cfg, err := glint.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	themeName := cfg.Theme
	if flagTheme != "" {
		if _, ok := glint.Themes[flagTheme]; !ok {
			return fmt.Errorf("unknown theme %q", flagTheme)
		}
		themeName = flagTheme
	}
	theme := glint.Themes[themeName]
	if themeName == "" {
		theme = glint.ThemeDark
		themeName = "dark"
	}

	startPath := flagPath
	if startPath == "" {
		if startPath, err = os.Getwd(); err != nil {
			return err
		}
	}
	if startPath, err = filepath.Abs(startPath); err != nil {
		return err
	}

	app, err := glint.NewApp(&theme)
	if err != nil {
		return err
	}
	registerDefaultBindings(app.Registry())
	if err := cfg.Apply(app.Registry()); err != nil {
		return err
	}

	opts := &options{
		showHidden:    false,
		confirmDelete: true,
		themeName:     themeName,
	}
	browser, err := newBrowserScreen(app, startPath, opts)
	if err != nil {
		return err
	}
	app.Push(browser)

	return app.Run()
}

// registerDefaultBindings installs the built-in keymap. Several actions
// carry a fallback binding at a lower priority, so rebinding the primary
// key in the config leaves the alternative working.
func registerDefaultBindings(reg *glint.Registry) {
	bind := func(token, action, desc string, priority int) {
		reg.MustBind(glint.Binding{
			Combo:       mustCombo(token),
			Action:      action,
			Description: desc,
			Category:    "files",
			Priority:    priority,
		})
	}

	bind("tab", actionSwitchPane, "switch active pane", 10)
	bind("f3", actionView, "view file", 10)
	bind("f2", actionRun, "run command", 10)
	bind("f5", actionCopy, "copy to other pane", 10)
	bind("f6", actionMove, "move to other pane", 10)
	bind("f7", actionMkdir, "create directory", 10)
	bind("f8", actionDelete, "delete", 10)
	bind("delete", actionDelete, "delete", 5)
	bind("insert", actionMark, "mark entry", 10)
	bind("ctrl+t", actionMark, "mark entry", 5)
	bind("f9", actionMenu, "open menu", 10)
	bind("ctrl+r", actionReload, "reload panes", 10)
	bind("f1", actionHelp, "key bindings", 10)
	bind("o", actionOptions, "options", 10)

	bind("f10", glint.ActionBack, "quit / close screen", 10)
	bind("q", glint.ActionBack, "quit / close screen", 5)
}

func mustCombo(token string) glint.Combination {
	c, ok := glint.DecodeToken(token)
	if !ok {
		panic(fmt.Sprintf("bad binding token %q", token))
	}
	return c
}
