/*
 * record.go, part of gonomen.
 *
 * Copyright 2024 The gonomen authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package isomer

import (
	chem "github.com/chimie3d/gonomen"
)

// DefaultMaxIsomers is the largest number of records in a set.
const DefaultMaxIsomers = 25

// Kind is the relation between an isomer and the compound it was derived from.
type Kind string

const (
	Chain      Kind = "chain"
	Position   Kind = "position"
	Functional Kind = "functional"
	Geometric  Kind = "geometric"
	Single     Kind = "single"
)

// Label returns the Romanian name of the kind of isomerism.
func (K Kind) Label() string {
	switch K {
	case Chain:
		return "Izomerie de catenă"
	case Position:
		return "Izomerie de poziție"
	case Functional:
		return "Izomerie de funcțiune"
	case Geometric:
		return "Izomerie geometrică (cis-trans)"
	case Single:
		return "Structură principală"
	}
	return string(K)
}

// Record is one isomer. A record either carries its own Structure or
// points, through Ref, to a structure kept elsewhere (a catalog key).
type Record struct {
	Name        string         `json:"name"`
	Kind        Kind           `json:"kind"`
	Description string         `json:"description"`
	Structure   *chem.Molecule `json:"structure,omitempty"`
	Ref         string         `json:"ref,omitempty"`
}

// Set is a group of isomers sharing a formula. No two records in a set
// have the same name, and a set never grows past its limit.
type Set struct {
	Formula string   `json:"formula"`
	Records []Record `json:"isomers"`
	max     int
	seen    map[string]bool
}

// NewSet returns an empty set for formula, holding at most max records
// (DefaultMaxIsomers if max < 1).
func NewSet(formula string, max int) *Set {
	if max < 1 {
		max = DefaultMaxIsomers
	}
	return &Set{Formula: formula, max: max, seen: make(map[string]bool)}
}

// Add appends r unless the set is full or already has a record, or an alias,
// with the same name. It returns true if r was added.
func (S *Set) Add(r Record) bool {
	if S.seen == nil {
		S.seen = make(map[string]bool)
	}
	if S.Full() || S.seen[r.Name] {
		return false
	}
	S.seen[r.Name] = true
	S.Records = append(S.Records, r)
	return true
}

// Alias marks name as taken, so that no record with that name can be added.
func (S *Set) Alias(name string) {
	if S.seen == nil {
		S.seen = make(map[string]bool)
	}
	S.seen[name] = true
}

// Full returns true if no more records can be added.
func (S *Set) Full() bool {
	max := S.max
	if max < 1 {
		max = DefaultMaxIsomers
	}
	return len(S.Records) >= max
}

// Len returns the number of records.
func (S *Set) Len() int {
	if S == nil {
		return 0
	}
	return len(S.Records)
}

// Names returns the names of the records, in order.
func (S *Set) Names() []string {
	if S == nil {
		return nil
	}
	ret := make([]string, len(S.Records))
	for i, r := range S.Records {
		ret[i] = r.Name
	}
	return ret
}
