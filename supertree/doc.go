// Package supertree implements the recursive supertree procedure (spec
// component G): build a proper-cluster graph from the current tree set,
// contract it (package contract), cut it (package mincut), mark every
// edge lying in some minimum cut (package allmincuts), partition into
// components, and recurse on each component that has three or more labels
// and is still covered by more than one pruned source tree (a component
// covered by a single pruned tree gets that tree grafted instead) — growing
// the output tree in pre-order through
// a cursor that mirrors push/pop with the recursive call stack itself.
package supertree
