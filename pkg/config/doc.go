// Package config handles configuration management for assetlint.
//
// Configuration is layered with koanf, lowest priority first:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. assetlint.toml or .assetlint.toml in the root directory, or the
//     file passed with --config
//  3. ASSETLINT_* environment variables (ASSETLINT_CONCURRENCY=4,
//     ASSETLINT_CATEGORIES=sounds,textures, ASSETLINT_FILES_META=...)
//  4. explicit overrides, usually command-line flags
//
// With no config file the result equals the fixed rules of the tool:
// categories sounds and textures, meta.json and Splash.png required,
// source and author required, six URL fields.
package config
