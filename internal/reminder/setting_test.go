package reminder

import "testing"

func TestSettingClampsValue(t *testing.T) {
	s := NewSetting(1, 90)
	cases := []struct {
		in, want int
	}{
		{150, 90},
		{0, 1},
		{-7, 1},
		{1, 1},
		{42, 42},
		{90, 90},
	}
	for _, tc := range cases {
		s.SetValue(tc.in)
		if got := s.Value(); got != tc.want {
			t.Fatalf("SetValue(%d): Value() = %d, want %d", tc.in, got, tc.want)
		}
		if got := s.Displayed(); got != tc.want {
			t.Fatalf("SetValue(%d): Displayed() = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSettingRangeSwapAndReclamp(t *testing.T) {
	s := NewSetting(90, 1)
	if min, max := s.Range(); min != 1 || max != 90 {
		t.Fatalf("expected range [1,90], got [%d,%d]", min, max)
	}
	s.SetValue(80)
	s.SetRange(1, 60)
	if s.Value() != 60 {
		t.Fatalf("expected value re-clamped to 60, got %d", s.Value())
	}
}

func TestSettingRenderKeepsStoredValue(t *testing.T) {
	s := NewSetting(1, 90)
	s.SetValue(30)
	s.SetActiveStyle()
	s.Render(12)
	if s.Value() != 30 {
		t.Fatalf("Render changed stored value to %d", s.Value())
	}
	if s.Displayed() != 12 {
		t.Fatalf("expected display 12, got %d", s.Displayed())
	}
	s.RefreshDisplay()
	if s.Displayed() != 30 {
		t.Fatalf("expected display reset to 30, got %d", s.Displayed())
	}
}

func TestSettingSetValueWhileActiveLeavesDisplay(t *testing.T) {
	s := NewSetting(1, 90)
	s.SetValue(20)
	s.SetActiveStyle()
	s.Render(5)
	s.SetValue(40)
	if s.Displayed() != 5 {
		t.Fatalf("expected countdown display kept, got %d", s.Displayed())
	}
	if s.Value() != 40 {
		t.Fatalf("expected stored 40, got %d", s.Value())
	}
}

func TestSettingEnableAndStyleNotify(t *testing.T) {
	s := NewSetting(1, 90)
	changes := 0
	s.OnChange(func() { changes++ })

	s.SetEnabled(false)
	s.SetEnabled(false)
	if s.Enabled() {
		t.Fatalf("expected disabled")
	}
	s.SetActiveStyle()
	if !s.Active() {
		t.Fatalf("expected active style")
	}
	s.SetInactiveStyle()
	if s.Active() {
		t.Fatalf("expected inactive style")
	}
	if changes != 3 {
		t.Fatalf("expected 3 change notifications, got %d", changes)
	}

	s.SetValue(s.Value())
	if changes != 3 {
		t.Fatalf("no-op SetValue should not notify")
	}
}
