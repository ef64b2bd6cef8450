// Package config parses the CLI surface (spec §6) into a Config value: one
// positional source-tree path plus the output/mode switches of the flag
// table. Parsing never touches the filesystem or the algorithmic packages;
// cmd/mincut-supertree translates a Config into calls against tree, mrp,
// render, and supertree.
package config
