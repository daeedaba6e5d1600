// seehuhn.de/go/colour - a library for colour science computations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colour

import (
	"fmt"
	"log/slog"
	"sync"
)

// WarningHandler receives recoverable usage warnings.  Warnings never alter
// control flow; the operation which triggered the warning proceeds.
type WarningHandler func(msg string)

var (
	warnMu      sync.RWMutex
	warnHandler WarningHandler = func(msg string) {
		slog.Default().Warn(msg, slog.String("source", "colour"))
	}
)

// SetWarningHandler replaces the handler used by [Warn] and returns the
// previous handler.  A nil handler silences all warnings.
func SetWarningHandler(h WarningHandler) WarningHandler {
	warnMu.Lock()
	defer warnMu.Unlock()
	prev := warnHandler
	warnHandler = h
	return prev
}

// Warn reports a recoverable usage warning.
func Warn(format string, args ...any) {
	warnMu.RLock()
	h := warnHandler
	warnMu.RUnlock()
	if h != nil {
		h(fmt.Sprintf(format, args...))
	}
}
