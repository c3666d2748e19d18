package region

import "github.com/roadtriplabs/fuelroute/internal/models"

// stateCoords maps each US state to a single reference coordinate near its
// geographic center. Stations are positioned at these points instead of
// their geocoded street addresses.
var stateCoords = map[string]models.LatLon{
	"AL": {Latitude: 32.806671, Longitude: -86.791130},
	"AK": {Latitude: 61.370716, Longitude: -152.404419},
	"AZ": {Latitude: 33.729759, Longitude: -111.431221},
	"AR": {Latitude: 34.969704, Longitude: -92.373123},
	"CA": {Latitude: 36.116203, Longitude: -119.681564},
	"CO": {Latitude: 39.059811, Longitude: -105.311104},
	"CT": {Latitude: 41.597782, Longitude: -72.755371},
	"DE": {Latitude: 39.318523, Longitude: -75.507141},
	"FL": {Latitude: 27.766279, Longitude: -81.686783},
	"GA": {Latitude: 33.040619, Longitude: -83.643074},
	"HI": {Latitude: 21.094318, Longitude: -157.498337},
	"ID": {Latitude: 44.240459, Longitude: -114.478828},
	"IL": {Latitude: 40.349457, Longitude: -88.986137},
	"IN": {Latitude: 39.849426, Longitude: -86.258278},
	"IA": {Latitude: 42.011539, Longitude: -93.210526},
	"KS": {Latitude: 38.526600, Longitude: -96.726486},
	"KY": {Latitude: 37.668140, Longitude: -84.670067},
	"LA": {Latitude: 31.169546, Longitude: -91.867805},
	"ME": {Latitude: 44.693947, Longitude: -69.381927},
	"MD": {Latitude: 39.063946, Longitude: -76.802101},
	"MA": {Latitude: 42.230171, Longitude: -71.530106},
	"MI": {Latitude: 43.326618, Longitude: -84.536095},
	"MN": {Latitude: 45.694454, Longitude: -93.900192},
	"MS": {Latitude: 32.741646, Longitude: -89.678696},
	"MO": {Latitude: 38.456085, Longitude: -92.288368},
	"MT": {Latitude: 46.921925, Longitude: -110.454353},
	"NE": {Latitude: 41.125370, Longitude: -98.268082},
	"NV": {Latitude: 38.313515, Longitude: -117.055374},
	"NH": {Latitude: 43.452492, Longitude: -71.563896},
	"NJ": {Latitude: 40.298904, Longitude: -74.521011},
	"NM": {Latitude: 34.840515, Longitude: -106.248482},
	"NY": {Latitude: 42.165726, Longitude: -74.948051},
	"NC": {Latitude: 35.630066, Longitude: -79.806419},
	"ND": {Latitude: 47.528912, Longitude: -99.784012},
	"OH": {Latitude: 40.388783, Longitude: -82.764915},
	"OK": {Latitude: 35.565342, Longitude: -96.928917},
	"OR": {Latitude: 44.572021, Longitude: -122.070938},
	"PA": {Latitude: 40.590752, Longitude: -77.209755},
	"RI": {Latitude: 41.680893, Longitude: -71.511780},
	"SC": {Latitude: 33.856892, Longitude: -80.945007},
	"SD": {Latitude: 44.299782, Longitude: -99.438828},
	"TN": {Latitude: 35.747845, Longitude: -86.692345},
	"TX": {Latitude: 31.054487, Longitude: -97.563461},
	"UT": {Latitude: 40.150032, Longitude: -111.862434},
	"VT": {Latitude: 44.045876, Longitude: -72.710686},
	"VA": {Latitude: 37.769337, Longitude: -78.169968},
	"WA": {Latitude: 47.400902, Longitude: -121.490494},
	"WV": {Latitude: 38.491226, Longitude: -80.954453},
	"WI": {Latitude: 44.268543, Longitude: -89.616508},
	"WY": {Latitude: 42.755966, Longitude: -107.302490},
}
