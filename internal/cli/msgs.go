package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rename many files at once with wildcard patterns"
	MsgVersionShort    = "Print version information"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration mmv runs with, after merging defaults, the config file, MMV_* environment variables and flags."
	MsgTopicsShort     = "Display available documentation topics"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Show what would be renamed without touching any file"
	MsgFlagForce       = "Replace destination files that already exist"
	MsgFlagInteractive = "Show the planned renames and ask before moving anything"
	MsgFlagFormat      = "Output format: auto, term, text, json or yaml"
	MsgFlagColor       = "Color output: auto, always or never"
	MsgFlagPrefix      = "Placeholder prefix used in TARGET"
	MsgFlagDefaults    = "Print the commented default configuration instead"
	MsgFlagPath        = "Print the configuration file path"

	// Output
	MsgTopicsHeader = "Available help topics:"
	MsgTopicsFooter = "\nUse 'mmv topics <topic>' to read about a specific topic."
	MsgVersionFmt   = "mmv version %s\n  commit: %s\n  built:  %s\n"
	MsgDeclined     = "Aborted, no file was renamed."
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
