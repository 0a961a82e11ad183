// Package config loads assetpipe configuration with koanf.
//
// Sources are layered, later ones winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. assetpipe.toml, .assetpipe.toml or assetpipe.yaml in the working
//     directory, or the file given with --config
//  3. ASSETPIPE_* environment variables, after .env is loaded; "__"
//     separates nested keys, so ASSETPIPE_SERVER__ADDR sets server.addr
//     and comma separated values fill lists
//
// Maps merge key by key across layers; lists are replaced.
package config
