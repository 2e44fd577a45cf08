/*
 * errors.go, part of gocryst
 *
 * Copyright 2024 The gocryst developers
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package cryst

//Error is the interface for errors that the packages in this library implement. The
//Decorate method allows adding and retrieving information from the error, without
//changing its type or wrapping it in something else. The decoration slice should
//contain the names of the functions in the calling stack, each optionally followed
//by extra information, in the format "FunctionName: extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError (Concrete Error) is the concrete type implementing the Error interface that
//the functions in this package return.
type CError struct {
	msg  string
	deco []string
}

//Error returns the error message.
func (err CError) Error() string { return err.msg }

//Decorate adds dec to the decoration slice of strings of the error, and returns the
//resulting slice. If dec is empty, it just returns the current decoration.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
