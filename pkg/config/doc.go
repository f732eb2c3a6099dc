// Package config loads typed configuration structs from the environment.
//
// Struct fields are described with github.com/caarlos0/env tags (`env`,
// `envDefault`, `required`). Values are looked up in explicit overrides, then
// the process environment, then dotenv files read with github.com/joho/godotenv
// (".env" by default, silently skipped when absent).
//
//	var cfg lead.Config
//	config.MustLoad(&cfg)
//
// Load never mutates the process environment and keeps no global cache, so
// each caller gets its own value and tests can load different configs side by
// side.
package config
