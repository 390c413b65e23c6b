package model

import "testing"

func TestIconFor(t *testing.T) {
	cases := []struct {
		color MarkerColor
		want  string
	}{
		{ColorGreen, "green"},
		{ColorRed, "red"},
		{ColorBlue, "blue"},
		// Everything unrecognized renders blue, including "default".
		{ColorDefault, "blue"},
		{MarkerColor("purple"), "blue"},
		{MarkerColor(""), "blue"},
	}
	for _, tc := range cases {
		icon := IconFor(tc.color)
		if icon.Name != tc.want {
			t.Errorf("IconFor(%q) = %q, want %q", tc.color, icon.Name, tc.want)
		}
		if icon.IconURL == "" || icon.ShadowURL == "" {
			t.Errorf("IconFor(%q) returned incomplete asset URLs", tc.color)
		}
	}
}

func TestMarkerIcon(t *testing.T) {
	m := Marker{Color: ColorGreen}
	if got := m.Icon().Name; got != "green" {
		t.Errorf("Icon().Name = %q, want green", got)
	}
}
