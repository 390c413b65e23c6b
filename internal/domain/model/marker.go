package model

import "time"

// MarkerColor is the color a user picked when placing a pin.
type MarkerColor string

const (
	ColorDefault MarkerColor = "default"
	ColorGreen   MarkerColor = "green"
	ColorRed     MarkerColor = "red"
	ColorBlue    MarkerColor = "blue"
)

// Marker is a user-placed map pin. ID is empty until the store has
// persisted the row and assigned one.
type Marker struct {
	ID          string      `json:"id,omitempty" db:"id"`
	OwnerID     string      `json:"user_id" db:"user_id"`
	Latitude    float64     `json:"latitude" db:"latitude"`
	Longitude   float64     `json:"longitude" db:"longitude"`
	Description string      `json:"description" db:"description"`
	Color       MarkerColor `json:"color" db:"color"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// MarkerIcon is the presentation asset a pin renders with.
type MarkerIcon struct {
	Name      string `json:"name"`
	IconURL   string `json:"icon_url"`
	ShadowURL string `json:"shadow_url"`
}

const iconShadowURL = "https://cdnjs.cloudflare.com/ajax/libs/leaflet/0.7.7/images/marker-shadow.png"

func colorIcon(name string) MarkerIcon {
	return MarkerIcon{
		Name:      name,
		IconURL:   "https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/marker-icon-2x-" + name + ".png",
		ShadowURL: iconShadowURL,
	}
}

// IconFor maps a marker color to its icon. green, red and blue get their
// own icons; everything else, "default" included, falls back to the blue
// icon. That fallback matches how pins have always rendered and is kept on
// purpose.
func IconFor(color MarkerColor) MarkerIcon {
	switch color {
	case ColorGreen:
		return colorIcon("green")
	case ColorRed:
		return colorIcon("red")
	case ColorBlue:
		return colorIcon("blue")
	default:
		return colorIcon("blue")
	}
}

// Icon returns the icon this marker renders with.
func (m *Marker) Icon() MarkerIcon {
	return IconFor(m.Color)
}
