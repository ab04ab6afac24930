/*
 * MIT License
 *
 * Copyright (c) 2022-2026  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package extension

import (
	"strings"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/errors"
)

// optionalMarker prefixes an optional identifier in string declarations
const optionalMarker = "@"

// Implementer is implemented by hosts that declare behaviors.
//
// Implements returns the ordered behavior declaration: a comma-delimited
// string, a []string, a []Use or a single Use. It is read once when the
// host registry is created and, on the zero value of the host type, once
// per type by the static resolver.
type Implementer interface {
	Implements() any
}

// Use is one entry of a behavior declaration.
type Use struct {
	// ID is the behavior identifier
	ID string
	// Optional marks a behavior that is skipped when it cannot be resolved
	Optional bool
}

// Required declares a behavior that must resolve
func Required(id string) Use {
	return Use{ID: behavior.NormalizeID(id)}
}

// Optional declares a behavior that is silently skipped when it cannot be resolved
func Optional(id string) Use {
	return Use{ID: behavior.NormalizeID(id), Optional: true}
}

// ParseUse parses a single declaration entry. A leading "@" marks the entry optional.
func ParseUse(entry string) Use {
	entry = strings.TrimSpace(entry)
	if strings.HasPrefix(entry, optionalMarker) {
		return Optional(strings.TrimPrefix(entry, optionalMarker))
	}
	return Required(entry)
}

// ParseImplements converts a behavior declaration into its ordered entries.
// Empty entries are dropped. A declaration of any other type fails with
// errors.ErrInvalidImplementDeclaration.
func ParseImplements(declaration any) ([]Use, error) {
	var uses []Use
	switch value := declaration.(type) {
	case nil:
		return nil, nil
	case string:
		for _, entry := range strings.Split(value, ",") {
			uses = appendUse(uses, ParseUse(entry))
		}
	case []string:
		for _, entry := range value {
			uses = appendUse(uses, ParseUse(entry))
		}
	case []Use:
		for _, use := range value {
			use.ID = behavior.NormalizeID(use.ID)
			uses = appendUse(uses, use)
		}
	case Use:
		value.ID = behavior.NormalizeID(value.ID)
		uses = appendUse(uses, value)
	default:
		return nil, errors.ErrInvalidImplementDeclaration
	}
	return uses, nil
}

func appendUse(uses []Use, use Use) []Use {
	if use.ID == "" {
		return uses
	}
	return append(uses, use)
}

// declarationOf returns the host declaration, nil when the host declares nothing
func declarationOf(host any) any {
	if implementer, ok := host.(Implementer); ok {
		return implementer.Implements()
	}
	return nil
}
