// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewThemeKnownPalettes(t *testing.T) {
	for _, name := range []string{"dark", "light"} {
		th := NewTheme(name)
		if th.Name != name {
			t.Errorf("NewTheme(%q).Name = %q", name, th.Name)
		}
	}
}

func TestNewThemeUnknownFallsBackToDark(t *testing.T) {
	th := NewTheme("solarized-rainbow")
	if th.Name != "dark" {
		t.Errorf("unknown palette resolved to %q, want dark", th.Name)
	}
	if !th.IsDark {
		t.Error("fallback theme should report IsDark")
	}
}
