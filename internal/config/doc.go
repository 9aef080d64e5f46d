// Package config provides configuration management for depctl.
//
// This package implements a layered configuration system that allows users to
// customize depctl's behavior through YAML files. Configuration is loaded from
// multiple sources and merged in a specific order, with later sources overriding
// earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Provides sensible defaults for all settings
//     - Ensures depctl works out-of-the-box on a standard Drupal project
//
//  2. User Configuration (~/.config/depctl/config.yaml)
//     - User-specific settings that apply to all projects
//     - Useful for personal preferences and common overrides
//
//  3. Project Configuration (./.depctl/config.yaml)
//     - Project-specific settings in the current directory
//     - Allows teams to share configuration via version control
//
// # Configuration Structure
//
// The configuration file uses YAML format with the following sections:
//
//	manifest: composer.json
//	corePackages:
//	  - drupal/core
//	projectPackages:
//	  - drupal/lightning
//	  - acme/*
//
// manifest names the composer.json the commands operate on, relative to the
// working directory. corePackages and projectPackages decide which rewrite
// policy applies to a package: core keeps the minor version ("8.5.x-dev"),
// project keeps only the major version ("1.x-dev"). Entries are either exact
// package names or vendor wildcards ("acme/*").
//
// # Policy Resolution
//
// PolicyFor resolves a package name against both lists: exact entries win
// over vendor wildcards, and within each group corePackages is consulted
// first. A package matching neither list is unmanaged and is never rewritten.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if policy, ok := cfg.PolicyFor("drupal/core"); ok {
//	    fmt.Printf("drupal/core is rewritten with the %s policy\n", policy)
//	}
package config
