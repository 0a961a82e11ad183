package assetpipe

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Resolve, concatenate and transform web assets"
	MsgProcessShort    = "Build an asset and write the result"
	MsgLocateShort     = "Show where an asset resolves and how it is typed"
	MsgManifestShort   = "List the files an asset's directives pull in"
	MsgCompileShort    = "Build assets into the live assets folder"
	MsgServeShort      = "Serve assets over HTTP"
	MsgConfigShort     = "Print the effective configuration"
	MsgTransformsShort = "List the available transforms"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default: assetpipe.toml in the working directory)"
	MsgFlagFormat   = "Output format: auto, term, text, json, yaml"
	MsgFlagOutput   = "Write to this file instead of stdout"
	MsgFlagDest     = "Destination folder (default: live_assets_folder)"
	MsgFlagAddr     = "Listen address (default: server.addr)"
	MsgFlagDefaults = "Print a commented starter config instead"
	MsgFlagManDir   = "Directory to write man pages to"

	MsgNotFound        = "asset %s not found in any asset folder"
	MsgCompileFailed   = "%d of %d assets failed to compile"
	MsgServerStopping  = "Shutting down"
	MsgVersionFormat   = "assetpipe version %s\n  commit: %s\n  built:  %s\n"
	MsgManPagesWritten = "Man pages written to %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
