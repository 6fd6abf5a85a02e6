/*
 * session.go, part of gonomen.
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

// Session follows one user through a search, the isomers of the compound
// found, and back. It holds the compound on screen and the compound whose
// isomers are being browsed. A Session is not safe for concurrent use.
type Session struct {
	explorer *Explorer
	current  *Result
	parent   *Result
}

// NewSession returns an empty session over E.
func (E *Explorer) NewSession() *Session {
	return &Session{explorer: E}
}

// Show searches query and shows the result. The parent is forgotten. On
// error the session is left as it was.
func (S *Session) Show(query string) (*Result, error) {
	r, err := S.explorer.Search(query)
	if err != nil {
		return nil, err
	}
	S.current = r
	S.parent = nil
	return r, nil
}

// OpenIsomer shows the ith isomer in the list on screen. The compound
// whose isomers these are becomes the parent, and stays the parent while
// its other isomers are opened.
func (S *Session) OpenIsomer(i int) (*Result, error) {
	from := S.parent
	if from == nil {
		from = S.current
	}
	if from == nil {
		return nil, ErrIsomerIndex
	}
	r, err := S.explorer.isomerResult(from, i)
	if err != nil {
		return nil, err
	}
	S.parent = from
	S.current = r
	return r, nil
}

// Back shows the parent again. It returns ErrNoParent if no isomer is open.
func (S *Session) Back() (*Result, error) {
	if S.parent == nil {
		return nil, ErrNoParent
	}
	S.current, S.parent = S.parent, nil
	return S.current, nil
}

// Current returns the result on screen, nil before the first search.
func (S *Session) Current() *Result {
	return S.current
}

// Parent returns the compound whose isomer is on screen, or nil.
func (S *Session) Parent() *Result {
	return S.parent
}
