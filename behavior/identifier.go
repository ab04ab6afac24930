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

package behavior

import (
	"strings"
)

// Separator is the canonical separator of behavior identifiers
const Separator = "."

var separatorReplacer = strings.NewReplacer(`\`, Separator, "/", Separator)

// NormalizeID trims the identifier and rewrites namespace separators
// ("\" and "/") to the canonical dot, so that "App\Behaviors\Flyable",
// "App/Behaviors/Flyable" and "App.Behaviors.Flyable" are the same identifier.
func NormalizeID(id string) string {
	return separatorReplacer.Replace(strings.TrimSpace(id))
}

// ShortName returns the component after the last separator of the identifier.
// An identifier without separator is its own short name.
func ShortName(id string) string {
	id = NormalizeID(id)
	if index := strings.LastIndex(id, Separator); index >= 0 {
		return id[index+len(Separator):]
	}
	return id
}
