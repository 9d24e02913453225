// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Rendering - these keys govern how a list chain is drawn in the terminal.
const (
	RenderLimit = "render.limit"
	RenderArrow = "render.arrow"
)

// Script Execution - these keys configure the op script runner.
const (
	ExecSuggestOps = "exec.suggest_ops"
)

// Teardown Stress - these keys configure the default size of stress runs.
const (
	StressCount = "stress.count"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive stack view.
const (
	TUIPrompt = "tui.prompt"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
