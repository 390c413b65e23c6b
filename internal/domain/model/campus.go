package model

// CampusRegions returns the PNW Hammond building footprints in their fixed
// priority order. Overlapping bounding boxes resolve to whichever region is
// listed first, so the order here is part of the resolver contract.
//
// Corners are listed top left, top right, bottom right, as surveyed.
func CampusRegions() []Region {
	return []Region{
		{
			ID:   "SULB",
			Name: "SULB",
			Corners: []LatLng{
				{Lat: 41.584527, Lng: -87.474722},
				{Lat: 41.584527, Lng: -87.473389},
				{Lat: 41.584083, Lng: -87.473306},
			},
		},
		{
			ID:   "GYTE",
			Name: "Gyte",
			Corners: []LatLng{
				{Lat: 41.58559579963701, Lng: -87.47565221109035},
				{Lat: 41.58550752684843, Lng: -87.47417029072048},
				{Lat: 41.585075189061406, Lng: -87.47414615084114},
			},
		},
		{
			ID:   "POTTER",
			Name: "Potter",
			Corners: []LatLng{
				{Lat: 41.586511340457825, Lng: -87.47504375643874},
				{Lat: 41.586513346627704, Lng: -87.47474066684273},
				{Lat: 41.58616728139962, Lng: -87.47474334905155},
			},
		},
		{
			ID:   "POWERS",
			Name: "Powers",
			Corners: []LatLng{
				{Lat: 41.58648626332894, Lng: -87.47561372581177},
				{Lat: 41.58648726641429, Lng: -87.47516311473098},
				{Lat: 41.58604691045072, Lng: -87.47516445583538},
			},
		},
		{
			ID:   "CLO",
			Name: "CLO",
			Corners: []LatLng{
				{Lat: 41.58719204054566, Lng: -87.47575650012156},
				{Lat: 41.58721109895614, Lng: -87.47507119576952},
				{Lat: 41.58653000805287, Lng: -87.4750483969933},
			},
		},
		{
			ID:   "NILS",
			Name: "NILS",
			Corners: []LatLng{
				{Lat: 41.58361944832225, Lng: -87.47458185241473},
				{Lat: 41.58361042015047, Lng: -87.47343252589033},
				{Lat: 41.58337819513019, Lng: -87.47355926026957},
			},
		},
		{
			ID:   "PORTER",
			Name: "Porter",
			Corners: []LatLng{
				{Lat: 41.58540983454981, Lng: -87.47351260108323},
				{Lat: 41.58540180973273, Lng: -87.47274548936234},
				{Lat: 41.5850868348742, Lng: -87.47274280715354},
			},
		},
		{
			ID:   "OFFICE",
			Name: "Office of Admissions",
			Corners: []LatLng{
				{Lat: 41.58324415257033, Lng: -87.47560494597836},
				{Lat: 41.583293306201845, Lng: -87.4751798158813},
				{Lat: 41.58267336581933, Lng: -87.47517445146507},
			},
		},
		{
			ID:   "FITNESS",
			Name: "Fitness Center",
			Corners: []LatLng{
				{Lat: 41.58063765045891, Lng: -87.4745391853471},
				{Lat: 41.580620596461095, Lng: -87.47340863433189},
				{Lat: 41.579953480651504, Lng: -87.47348105396162},
			},
		},
		{
			ID:   "COUNSELING",
			Name: "Counseling Center",
			Corners: []LatLng{
				{Lat: 41.579594338742616, Lng: -87.47526740499988},
				{Lat: 41.57959132916529, Lng: -87.47498174976117},
				{Lat: 41.579230178868485, Lng: -87.47500454853608},
			},
		},
		{
			ID:   "ANDERSON",
			Name: "Anderson",
			Corners: []LatLng{
				{Lat: 41.58802407130252, Lng: -87.47562641050784},
				{Lat: 41.58802106211808, Lng: -87.47498670370564},
				{Lat: 41.5874262439056, Lng: -87.47493440063377},
			},
		},
	}
}

// CampusBounds is the map viewport restriction for the Hammond campus:
// bottom-left and top-right corners of the visible box.
var CampusBounds = struct {
	SouthWest LatLng
	NorthEast LatLng
}{
	SouthWest: LatLng{Lat: 41.57752532677525, Lng: -87.47749638635923},
	NorthEast: LatLng{Lat: 41.58841412396277, Lng: -87.47080018646325},
}

// CampusCenter is the reference point for the traffic incident lookup
// (Hammond, IN).
var CampusCenter = LatLng{Lat: 41.583, Lng: -87.5}
