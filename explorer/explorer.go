/*
 * explorer.go, part of gonomen.
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

package explorer

import (
	"errors"
	"strings"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/builder"
	"github.com/chimie3d/gonomen/catalog"
	"github.com/chimie3d/gonomen/internal/logging"
	"github.com/chimie3d/gonomen/isomer"
	"github.com/chimie3d/gonomen/iupac"
)

var (
	ErrEmptyQuery  = errors.New("explorer: empty query")
	ErrNoParent    = errors.New("explorer: no parent compound to go back to")
	ErrIsomerIndex = errors.New("explorer: no isomer with that index")
)

// Source tells where a result came from.
type Source string

const (
	FromCatalog Source = "catalog"
	FromName    Source = "name"
	FromIsomer  Source = "isomer"
)

// Result is everything known about one compound. Key is the catalog key,
// empty if the compound is not in the catalog.
type Result struct {
	Query       string            `json:"query"`
	Key         string            `json:"key,omitempty"`
	Name        string            `json:"name"`
	Formula     string            `json:"formula"`
	MolarMass   float64           `json:"molar_mass"`
	Description string            `json:"description"`
	Kind        isomer.Kind       `json:"kind"`
	Parsed      *iupac.ParsedName `json:"parsed,omitempty"`
	Structure   *chem.Molecule    `json:"structure"`
	Isomers     *isomer.Set       `json:"isomers,omitempty"`
	Source      Source            `json:"source"`
}

// Explorer answers searches. It is safe for concurrent use.
type Explorer struct {
	catalog   *catalog.Catalog
	generator *isomer.Generator
	logger    logging.Logger
}

type Option func(*Explorer)

// WithCatalog replaces the embedded catalog. A nil catalog disables lookups.
func WithCatalog(c *catalog.Catalog) Option {
	return func(E *Explorer) { E.catalog = c }
}

func WithGenerator(g *isomer.Generator) Option {
	return func(E *Explorer) { E.generator = g }
}

func WithLogger(l logging.Logger) Option {
	return func(E *Explorer) { E.logger = l }
}

// New returns an explorer over the embedded catalog, with the default
// isomer limits and no logging, unless opts say otherwise.
func New(opts ...Option) *Explorer {
	E := &Explorer{
		catalog:   catalog.Default(),
		generator: &isomer.Generator{},
		logger:    logging.Nop(),
	}
	for _, o := range opts {
		o(E)
	}
	return E
}

// Search looks query up. A catalog key or alias gives the stored structure
// and, if there is one, the stored isomer set. Anything else is parsed as a
// name, built, and its isomers generated. The only errors are ErrEmptyQuery
// and the *iupac.ParseError of a name that can't be read.
func (E *Explorer) Search(query string) (*Result, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	log := E.logger.With(logging.String("query", q))
	if E.catalog != nil {
		if c, ok := E.catalog.Lookup(q); ok {
			r := E.fromCatalog(q, c)
			log.Info("catalog hit", logging.String("key", c.Key), logging.Int("isomers", r.Isomers.Len()))
			return r, nil
		}
	}
	p, err := iupac.Parse(q)
	if err != nil {
		log.Warn("unreadable name", logging.Err(err))
		return nil, err
	}
	mol := builder.Build(p)
	name := iupac.FullName(p)
	r := &Result{
		Query:       q,
		Name:        name,
		Description: iupac.Describe(p),
		Kind:        isomer.KindOf(p),
		Parsed:      &p,
		Structure:   mol,
		Isomers:     E.generator.Generate(p, mol, name),
		Source:      FromName,
	}
	r.fill()
	log.Info("built", logging.String("name", name), logging.String("formula", r.Formula), logging.Int("isomers", r.Isomers.Len()))
	if r.Isomers != nil && r.Isomers.Full() {
		log.Debug("isomer set truncated", logging.Int("max", r.Isomers.Len()))
	}
	return r, nil
}

func (E *Explorer) fromCatalog(q string, c *catalog.Compound) *Result {
	r := &Result{
		Query:       q,
		Key:         c.Key,
		Name:        c.Name,
		Description: c.Description,
		Kind:        isomer.Single,
		Structure:   c.Structure,
		Source:      FromCatalog,
	}
	if c.IUPAC != "" {
		if p, err := iupac.Parse(c.IUPAC); err == nil {
			r.Parsed = &p
			r.Kind = isomer.KindOf(p)
		}
	}
	if set, ok := E.catalog.Isomers(c.Key); ok {
		r.Isomers = set
		r.Kind = set.Records[0].Kind
	} else if r.Parsed != nil {
		r.Isomers = E.generator.Generate(*r.Parsed, c.Structure, c.Name)
	}
	r.fill()
	return r
}

// isomerResult describes the ith record of the isomers of parent. The
// result keeps the isomer list of parent, so siblings can be opened from it.
func (E *Explorer) isomerResult(parent *Result, i int) (*Result, error) {
	if parent == nil || i < 0 || i >= parent.Isomers.Len() {
		return nil, ErrIsomerIndex
	}
	rec := parent.Isomers.Records[i]
	r := &Result{
		Query:       rec.Name,
		Key:         rec.Ref,
		Name:        rec.Name,
		Description: rec.Description,
		Kind:        rec.Kind,
		Structure:   rec.Structure,
		Isomers:     parent.Isomers,
		Source:      FromIsomer,
	}
	//Generated isomers are named by the formatter, so a name that reads
	//back to itself describes the structure.
	if p, err := iupac.Parse(rec.Name); err == nil && iupac.FullName(p) == rec.Name {
		r.Parsed = &p
	}
	r.fill()
	E.logger.Debug("isomer opened", logging.String("parent", parent.Name), logging.String("isomer", rec.Name))
	return r, nil
}

func (R *Result) fill() {
	R.Formula = chem.Formula(R.Structure)
	if m, err := chem.MolarMass(R.Structure); err == nil {
		R.MolarMass = m
	}
}

// Catalog returns the catalog searched first, nil if there is none.
func (E *Explorer) Catalog() *catalog.Catalog {
	return E.catalog
}
