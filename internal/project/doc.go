// Package project finds and loads the optional pawnc project file.
//
// The file is looked up from the input path upwards; the first directory holding
// pawnc.toml, pawnc.yaml or pawnc.yml wins (in that order):
//
//	[lexer]
//	legacy_identifiers = false
//
//	[diagnostics]
//	max = 100
//	color = "auto"   # auto | on | off
//
//	[parse]
//	jobs = 0         # 0 = GOMAXPROCS
//	extensions = [".pwn", ".inc"]
//
// Command-line flags override values from the file.
package project
