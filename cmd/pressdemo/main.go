package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-drift/press/cmd/pressdemo/internal/config"
	"github.com/go-drift/press/cmd/pressdemo/internal/scene"
	"github.com/go-drift/press/cmd/pressdemo/internal/ui"
	"github.com/go-drift/press/pkg/errors"
)

const Version = "0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			runInit(os.Args[2:])
			return
		case "scenarios":
			runScenarios()
			return
		case "help", "-h", "--help":
			printUsage()
			os.Exit(0)
		}
	}

	configPath := flag.String("config", "press.yaml", "path to configuration file")
	scenario := flag.String("scenario", "", "built-in scenario to run")
	verbose := flag.Bool("verbose", false, "log every pointer event")
	version := flag.Bool("version", false, "print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if *version {
		ui.PrintVersion(appName(nil), Version)
		os.Exit(0)
	}

	// Until the TUI takes over, reported errors go to stderr.
	errors.SetHandler(&errors.LogHandler{Verbose: *verbose})

	var (
		cfg     *config.Config
		watcher *config.Watcher
	)
	if config.Exists(*configPath) {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			ui.PrintFatalError("Failed to load config", err.Error())
			os.Exit(1)
		}
		watcher = w
		cfg = w.Get()
	} else {
		cfg = config.Default()
	}

	// Scene precedence: -scenario flag, then the config file's scene,
	// then its scenario field, then the interactive picker.
	scenarioName := *scenario
	if scenarioName == "" && len(cfg.Scene) == 0 {
		scenarioName = cfg.Scenario
	}

	var (
		nodes []config.NodeConfig
		label string
	)
	switch {
	case scenarioName != "":
		sc, ok := scene.FindScenario(scenarioName)
		if !ok {
			ui.PrintFatalError("Unknown scenario",
				fmt.Sprintf("%q is not a built-in scenario; run %s to list them",
					scenarioName, "pressdemo scenarios"))
			os.Exit(1)
		}
		nodes = sc.Nodes
		label = "scenario: " + sc.Name
	case len(cfg.Scene) > 0:
		nodes = cfg.Scene
		label = *configPath
	default:
		picked := pickScenario()
		if picked == nil {
			fmt.Println(ui.Muted("No scenario selected"))
			os.Exit(0)
		}
		nodes = picked.Nodes
		label = "scenario: " + picked.Name
	}

	err := ui.Run(ui.Options{
		Config:    cfg,
		Nodes:     nodes,
		SceneName: label,
		AppName:   appName(cfg),
		Version:   Version,
		Verbose:   *verbose,
		Watcher:   watcher,
	})
	if err != nil {
		ui.PrintFatalError("Demo exited with an error", err.Error())
		os.Exit(1)
	}
}

func printUsage() {
	ui.PrintUsage(appName(nil), Version)
}

// runInit handles the init subcommand
func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", "press.yaml", "path to configuration file")
	force := fs.Bool("force", false, "overwrite an existing config file")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if config.Exists(*configPath) && !*force {
		ui.PrintFatalError("Config already exists",
			fmt.Sprintf("%s is already present; pass -force to overwrite it", *configPath))
		os.Exit(1)
	}

	if err := config.CreateDefault(*configPath); err != nil {
		ui.PrintFatalError("Failed to create config", err.Error())
		os.Exit(1)
	}

	ui.PrintConfigCreated(*configPath)
}

// runScenarios handles the scenarios subcommand
func runScenarios() {
	ui.PrintScenarioList(scenarioInfos())
}

// pickScenario displays the interactive scenario picker. It returns nil
// when the user cancels.
func pickScenario() *scene.Scenario {
	picked, err := ui.SelectScenario(scenarioInfos())
	if err != nil {
		ui.PrintFatalError("Scenario selection failed", err.Error())
		os.Exit(1)
	}
	if picked == nil {
		return nil
	}

	sc, ok := scene.FindScenario(picked.Name)
	if !ok {
		return nil
	}
	return &sc
}

func scenarioInfos() []ui.ScenarioInfo {
	scenarios := scene.Scenarios()
	infos := make([]ui.ScenarioInfo, len(scenarios))
	for i, s := range scenarios {
		infos[i] = ui.ScenarioInfo{
			Name:        s.Name,
			Description: s.Description,
			Nodes:       countNodes(s.Nodes),
		}
	}
	return infos
}

func countNodes(nodes []config.NodeConfig) int {
	n := len(nodes)
	for _, nc := range nodes {
		n += countNodes(nc.Children)
	}
	return n
}

func appName(cfg *config.Config) string {
	dir, err := config.FindProjectRoot()
	if err != nil {
		dir = ""
	}
	return config.ResolveAppName(cfg, dir)
}
