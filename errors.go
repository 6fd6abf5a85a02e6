/*
 * errors.go, part of gonomen.
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

package chem

import (
	"errors"
	"fmt"
	"strings"
)

// CError is the error type returned by the chem package.
type CError struct {
	msg  string
	deco []string
}

func newError(caller, format string, args ...any) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), deco: []string{caller}}
}

func (err *CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Trail returns the call trail of the error as a single string,
// innermost caller first.
func (err *CError) Trail() string {
	return strings.Join(err.deco, " <- ")
}

// errDecorate decorates err with the caller's name if it implements Error.
// Other errors are wrapped into a CError.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return &CError{msg: err.Error(), deco: []string{caller}}
}
