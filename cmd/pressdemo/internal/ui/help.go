package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintUsage displays the styled help/usage text
func PrintUsage(appName, version string) {
	banner := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Render(appName)

	versionTag := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render("v" + version)

	fmt.Printf("%s %s\n", banner, versionTag)
	fmt.Println(Muted("Interactive demo for the press-state detector"))
	fmt.Println()

	printSection("Usage", []string{
		appName + " [flags]          Run the demo",
		appName + " init             Write a starter config file",
		appName + " scenarios        List the built-in scenarios",
		appName + " help             Show this help message",
	})

	printSection("Flags", []string{
		"-config string      Path to configuration file (default \"press.yaml\")",
		"-scenario string    Run a built-in scenario, skipping the picker",
		"-verbose            Log every pointer event",
		"-version            Print version and exit",
	})

	printSection("Keys", []string{
		"mouse drag    Press, move and release on scene nodes",
		"c             Cancel the active pointer stream",
		"x             Exclude the node under the cursor",
		"s             Write a PNG snapshot of the scene",
		"r             Reset the scene and the detector",
		"q             Quit",
	})

	printExamplesSection(appName)
}

func printSection(title string, items []string) {
	fmt.Println(Bold(title))
	for _, item := range items {
		fmt.Printf("  %s\n", item)
	}
	fmt.Println()
}

func printExamplesSection(appName string) {
	fmt.Println(Bold("Examples"))

	examples := []struct {
		cmd  string
		desc string
	}{
		{appName, "Pick a scenario interactively"},
		{appName + " -scenario list", "Deferred-press rows"},
		{appName + " -config my.yaml", "Run a custom scene with hot reload"},
		{appName + " init", "Create press.yaml to edit"},
	}

	cmdStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)

	maxLen := 0
	for _, ex := range examples {
		if len(ex.cmd) > maxLen {
			maxLen = len(ex.cmd)
		}
	}

	for _, ex := range examples {
		padding := strings.Repeat(" ", maxLen-len(ex.cmd)+2)
		fmt.Printf("  %s%s%s\n", cmdStyle.Render(ex.cmd), padding, Muted(ex.desc))
	}
	fmt.Println()
}

// PrintVersion displays the styled version information
func PrintVersion(appName, version string) {
	banner := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Render(appName)

	versionTag := lipgloss.NewStyle().
		Foreground(ColorPressed).
		Render("v" + version)

	fmt.Printf("%s %s\n", banner, versionTag)
}

// PrintError displays a styled error message
func PrintError(message string) {
	fmt.Println(Error(message))
}

// PrintFatalError displays a styled fatal error message with context
func PrintFatalError(context, message string) {
	fmt.Println()
	fmt.Println(Error(context))
	fmt.Printf("  %s\n", Muted(message))
	fmt.Println()
}

// PrintScenarioList displays the built-in scenarios
func PrintScenarioList(scenarios []ScenarioInfo) {
	if len(scenarios) == 0 {
		fmt.Println(Muted("No scenarios available"))
		return
	}

	fmt.Println()
	fmt.Println(Title("Scenarios"))
	fmt.Println(Muted(fmt.Sprintf("%d built-in scene(s)", len(scenarios))))
	fmt.Println()

	nameStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	maxLen := 0
	for _, s := range scenarios {
		if len(s.Name) > maxLen {
			maxLen = len(s.Name)
		}
	}

	for _, s := range scenarios {
		padding := strings.Repeat(" ", maxLen-len(s.Name)+2)
		fmt.Printf("  %s%s%s %s\n", nameStyle.Render(s.Name), padding,
			s.Description, Muted(fmt.Sprintf("(%d nodes)", s.Nodes)))
	}
	fmt.Println()
}

// PrintConfigCreated shows a success message after writing a config file
func PrintConfigCreated(path string) {
	fmt.Println()
	fmt.Println(Success("Configuration created"))
	fmt.Printf("  %s %s\n", Muted("Config:"), path)
	fmt.Printf("  %s %s\n", Muted("Run:"), Code("pressdemo -config "+path))
	fmt.Println()
}
