package cityset

import (
	"fmt"
	"sort"
	"strings"
)

// Coordinate is a named point given as latitude/longitude.
type Coordinate struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// FromCoordinates builds a set where x is the longitude and y the latitude.
// The name doubles as the city id.
func FromCoordinates(name string, coords []Coordinate) (*Set, error) {
	cities := make([]*City, len(coords))
	for i, c := range coords {
		cities[i] = NewCity(c.Name, c.Name, c.Longitude, c.Latitude)
	}
	return NewSet(name, cities)
}

var namedMaps = map[string][]Coordinate{
	"nigeria": nigeriaStates,
	"africa":  africaCountries,
	"world":   worldCountries,
}

// NamedMaps lists the built-in coordinate maps.
func NamedMaps() []string {
	names := make([]string, 0, len(namedMaps))
	for name := range namedMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named returns one of the built-in maps by name (case-insensitive).
func Named(name string) (*Set, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	coords, ok := namedMaps[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMap, name)
	}
	return FromCoordinates(key, coords)
}

// Nigerian states and the FCT.
var nigeriaStates = []Coordinate{
	{Name: "Abia", Latitude: 5.532, Longitude: 7.486},
	{Name: "Adamawa", Latitude: 9.3264, Longitude: 12.3984},
	{Name: "Akwa Ibom", Latitude: 5.036, Longitude: 7.9128},
	{Name: "Anambra", Latitude: 6.2209, Longitude: 7.0677},
	{Name: "Bauchi", Latitude: 10.3158, Longitude: 9.8442},
	{Name: "Bayelsa", Latitude: 4.75, Longitude: 6.0833},
	{Name: "Benue", Latitude: 7.7278, Longitude: 9.2524},
	{Name: "Borno", Latitude: 11.8847, Longitude: 13.151},
	{Name: "Cross River", Latitude: 5.9631, Longitude: 8.335},
	{Name: "Delta", Latitude: 5.7047, Longitude: 5.9339},
	{Name: "Ebonyi", Latitude: 6.2649, Longitude: 8.0134},
	{Name: "Edo", Latitude: 6.3405, Longitude: 5.62},
	{Name: "Ekiti", Latitude: 7.6227, Longitude: 5.2216},
	{Name: "Enugu", Latitude: 6.5243, Longitude: 7.518},
	{Name: "Gombe", Latitude: 10.29, Longitude: 11.17},
	{Name: "Imo", Latitude: 5.572, Longitude: 7.0588},
	{Name: "Jigawa", Latitude: 12.1314, Longitude: 9.5075},
	{Name: "Kaduna", Latitude: 10.5105, Longitude: 7.4165},
	{Name: "Kano", Latitude: 12.0022, Longitude: 8.5919},
	{Name: "Katsina", Latitude: 12.9956, Longitude: 7.6177},
	{Name: "Kebbi", Latitude: 12.45, Longitude: 4.1998},
	{Name: "Kogi", Latitude: 7.8004, Longitude: 6.7396},
	{Name: "Kwara", Latitude: 8.9669, Longitude: 4.5624},
	{Name: "Lagos", Latitude: 6.5244, Longitude: 3.3792},
	{Name: "Nasarawa", Latitude: 8.4904, Longitude: 8.52},
	{Name: "Niger", Latitude: 9.6008, Longitude: 6.5478},
	{Name: "Ogun", Latitude: 7.16, Longitude: 3.35},
	{Name: "Ondo", Latitude: 7.25, Longitude: 5.1931},
	{Name: "Osun", Latitude: 7.5629, Longitude: 4.5196},
	{Name: "Oyo", Latitude: 7.3768, Longitude: 3.9397},
	{Name: "Plateau", Latitude: 9.8965, Longitude: 8.8583},
	{Name: "Rivers", Latitude: 4.8156, Longitude: 7.0498},
	{Name: "Sokoto", Latitude: 13.0059, Longitude: 5.2476},
	{Name: "Taraba", Latitude: 8.8893, Longitude: 11.3659},
	{Name: "Yobe", Latitude: 11.748, Longitude: 11.966},
	{Name: "Zamfara", Latitude: 12.17, Longitude: 6.659},
	{Name: "FCT", Latitude: 9.0765, Longitude: 7.3986},
}

var africaCountries = []Coordinate{
	{Name: "Algeria", Latitude: 28.0339, Longitude: 1.6596},
	{Name: "Angola", Latitude: -11.2027, Longitude: 17.8739},
	{Name: "Benin", Latitude: 9.3077, Longitude: 2.3158},
	{Name: "Botswana", Latitude: -22.3285, Longitude: 24.6849},
	{Name: "Burkina Faso", Latitude: 12.2383, Longitude: -1.5616},
	{Name: "Burundi", Latitude: -3.3731, Longitude: 29.9189},
	{Name: "Cabo Verde", Latitude: 16.5388, Longitude: -23.0418},
	{Name: "Cameroon", Latitude: 7.3697, Longitude: 12.3547},
	{Name: "Central African Republic", Latitude: 6.6111, Longitude: 20.9394},
	{Name: "Chad", Latitude: 15.4542, Longitude: 18.7322},
	{Name: "Comoros", Latitude: -11.875, Longitude: 43.8722},
	{Name: "Congo (Congo-Brazzaville)", Latitude: -0.228, Longitude: 15.8277},
	{Name: "Democratic Republic of the Congo", Latitude: -4.0383, Longitude: 21.7587},
	{Name: "Djibouti", Latitude: 11.8251, Longitude: 42.5903},
	{Name: "Egypt", Latitude: 26.8206, Longitude: 30.8025},
	{Name: "Equatorial Guinea", Latitude: 1.6508, Longitude: 10.2679},
	{Name: "Eritrea", Latitude: 15.1794, Longitude: 39.7823},
	{Name: "Eswatini (Swaziland)", Latitude: -26.5225, Longitude: 31.4659},
	{Name: "Ethiopia", Latitude: 9.145, Longitude: 40.4897},
	{Name: "Gabon", Latitude: -0.8037, Longitude: 11.6094},
	{Name: "Gambia", Latitude: 13.4432, Longitude: -15.3101},
	{Name: "Ghana", Latitude: 7.9465, Longitude: -1.0232},
	{Name: "Guinea", Latitude: 9.9456, Longitude: -9.6966},
	{Name: "Guinea-Bissau", Latitude: 11.8037, Longitude: -15.1804},
	{Name: "Ivory Coast", Latitude: 7.5399, Longitude: -5.5471},
	{Name: "Kenya", Latitude: -0.0236, Longitude: 37.9062},
	{Name: "Lesotho", Latitude: -29.6099, Longitude: 28.2336},
	{Name: "Liberia", Latitude: 6.4281, Longitude: -9.4295},
	{Name: "Libya", Latitude: 26.3351, Longitude: 17.2283},
	{Name: "Madagascar", Latitude: -18.7669, Longitude: 46.8691},
	{Name: "Malawi", Latitude: -13.2543, Longitude: 34.3015},
	{Name: "Mali", Latitude: 17.5707, Longitude: -3.9962},
	{Name: "Mauritania", Latitude: 21.0079, Longitude: -10.9408},
	{Name: "Mauritius", Latitude: -20.3484, Longitude: 57.5522},
	{Name: "Morocco", Latitude: 31.7917, Longitude: -7.0926},
	{Name: "Mozambique", Latitude: -18.6657, Longitude: 35.5296},
	{Name: "Namibia", Latitude: -22.9576, Longitude: 18.4904},
	{Name: "Niger", Latitude: 17.6078, Longitude: 8.0817},
	{Name: "Nigeria", Latitude: 9.082, Longitude: 8.6753},
	{Name: "Rwanda", Latitude: -1.9403, Longitude: 29.8739},
	{Name: "São Tomé and Príncipe", Latitude: 0.1864, Longitude: 6.6131},
	{Name: "Senegal", Latitude: 14.4974, Longitude: -14.4524},
	{Name: "Seychelles", Latitude: -4.6796, Longitude: 55.492},
	{Name: "Sierra Leone", Latitude: 8.4606, Longitude: -11.7799},
	{Name: "Somalia", Latitude: 5.1521, Longitude: 46.1996},
	{Name: "South Africa", Latitude: -30.5595, Longitude: 22.9375},
	{Name: "South Sudan", Latitude: 6.877, Longitude: 31.307},
	{Name: "Sudan", Latitude: 12.8628, Longitude: 30.2176},
	{Name: "Tanzania", Latitude: -6.369, Longitude: 34.8888},
	{Name: "Togo", Latitude: 8.6195, Longitude: 0.8248},
	{Name: "Tunisia", Latitude: 33.8869, Longitude: 9.5375},
	{Name: "Uganda", Latitude: 1.3733, Longitude: 32.2903},
	{Name: "Zambia", Latitude: -13.1339, Longitude: 27.8493},
	{Name: "Zimbabwe", Latitude: -19.0154, Longitude: 29.1549},
}

var worldCountries = []Coordinate{
	{Name: "Afghanistan", Latitude: 33.9391, Longitude: 67.71},
	{Name: "Albania", Latitude: 41.1533, Longitude: 20.1683},
	{Name: "Algeria", Latitude: 28.0339, Longitude: 1.6596},
	{Name: "Andorra", Latitude: 42.5063, Longitude: 1.5218},
	{Name: "Angola", Latitude: -11.2027, Longitude: 17.8739},
	{Name: "Antigua and Barbuda", Latitude: 17.0608, Longitude: -61.7964},
	{Name: "Argentina", Latitude: -38.4161, Longitude: -63.6167},
	{Name: "Armenia", Latitude: 40.0691, Longitude: 45.0382},
	{Name: "Australia", Latitude: -25.2744, Longitude: 133.7751},
	{Name: "Austria", Latitude: 47.5162, Longitude: 14.5501},
	{Name: "Azerbaijan", Latitude: 40.1431, Longitude: 47.5769},
	{Name: "Bahamas", Latitude: 25.0343, Longitude: -77.3963},
	{Name: "Bahrain", Latitude: 26.0667, Longitude: 50.5577},
	{Name: "Bangladesh", Latitude: 23.685, Longitude: 90.3563},
	{Name: "Barbados", Latitude: 13.1939, Longitude: -59.5432},
	{Name: "Belarus", Latitude: 53.7098, Longitude: 27.9534},
	{Name: "Belgium", Latitude: 50.8503, Longitude: 4.3517},
	{Name: "Belize", Latitude: 17.1899, Longitude: -88.4976},
	{Name: "Benin", Latitude: 9.3077, Longitude: 2.3158},
	{Name: "Bhutan", Latitude: 27.5142, Longitude: 90.4336},
	{Name: "Bolivia", Latitude: -16.2902, Longitude: -63.5887},
	{Name: "Bosnia and Herzegovina", Latitude: 43.9159, Longitude: 17.6791},
	{Name: "Botswana", Latitude: -22.3285, Longitude: 24.6849},
	{Name: "Brazil", Latitude: -14.235, Longitude: -51.9253},
	{Name: "Brunei", Latitude: 4.5353, Longitude: 114.7277},
	{Name: "Bulgaria", Latitude: 42.7339, Longitude: 25.4858},
	{Name: "Burkina Faso", Latitude: 12.2383, Longitude: -1.5616},
	{Name: "Burundi", Latitude: -3.3731, Longitude: 29.9189},
	{Name: "Cabo Verde", Latitude: 16.5388, Longitude: -23.0418},
	{Name: "Cambodia", Latitude: 12.5657, Longitude: 104.991},
	{Name: "Cameroon", Latitude: 7.3697, Longitude: 12.3547},
	{Name: "Canada", Latitude: 56.1304, Longitude: -106.3468},
	{Name: "Central African Republic", Latitude: 6.6111, Longitude: 20.9394},
	{Name: "Chad", Latitude: 15.4542, Longitude: 18.7322},
	{Name: "Chile", Latitude: -35.6751, Longitude: -71.543},
	{Name: "China", Latitude: 35.8617, Longitude: 104.1954},
	{Name: "Colombia", Latitude: 4.5709, Longitude: -74.2973},
	{Name: "Comoros", Latitude: -11.875, Longitude: 43.8722},
	{Name: "Congo (Congo-Brazzaville)", Latitude: -0.228, Longitude: 15.8277},
	{Name: "Democratic Republic of the Congo", Latitude: -4.0383, Longitude: 21.7587},
	{Name: "Costa Rica", Latitude: 9.7489, Longitude: -83.7534},
	{Name: "Croatia", Latitude: 45.1, Longitude: 15.2},
	{Name: "Cuba", Latitude: 21.5218, Longitude: -77.7812},
	{Name: "Cyprus", Latitude: 35.1264, Longitude: 33.4299},
	{Name: "Czech Republic", Latitude: 49.8175, Longitude: 15.473},
	{Name: "Denmark", Latitude: 56.2639, Longitude: 9.5018},
	{Name: "Djibouti", Latitude: 11.8251, Longitude: 42.5903},
	{Name: "Dominica", Latitude: 15.415, Longitude: -61.371},
	{Name: "Dominican Republic", Latitude: 18.7357, Longitude: -70.1627},
	{Name: "Ecuador", Latitude: -1.8312, Longitude: -78.1834},
	{Name: "Egypt", Latitude: 26.8206, Longitude: 30.8025},
	{Name: "El Salvador", Latitude: 13.7942, Longitude: -88.8965},
	{Name: "Equatorial Guinea", Latitude: 1.6508, Longitude: 10.2679},
	{Name: "Eritrea", Latitude: 15.1794, Longitude: 39.7823},
	{Name: "Estonia", Latitude: 58.5953, Longitude: 25.0136},
	{Name: "Eswatini", Latitude: -26.5225, Longitude: 31.4659},
	{Name: "Ethiopia", Latitude: 9.145, Longitude: 40.4897},
	{Name: "Fiji", Latitude: -17.7134, Longitude: 178.065},
	{Name: "Finland", Latitude: 61.9241, Longitude: 25.7482},
	{Name: "France", Latitude: 46.6034, Longitude: 1.8883},
	{Name: "Gabon", Latitude: -0.8037, Longitude: 11.6094},
	{Name: "Gambia", Latitude: 13.4432, Longitude: -15.3101},
	{Name: "Georgia", Latitude: 42.3154, Longitude: 43.3569},
	{Name: "Germany", Latitude: 51.1657, Longitude: 10.4515},
	{Name: "Ghana", Latitude: 7.9465, Longitude: -1.0232},
	{Name: "Greece", Latitude: 39.0742, Longitude: 21.8243},
	{Name: "Grenada", Latitude: 12.1165, Longitude: -61.679},
	{Name: "Guatemala", Latitude: 15.7835, Longitude: -90.2308},
	{Name: "Guinea", Latitude: 9.9456, Longitude: -9.6966},
	{Name: "Guinea-Bissau", Latitude: 11.8037, Longitude: -15.1804},
	{Name: "Guyana", Latitude: 4.8604, Longitude: -58.9302},
	{Name: "Haiti", Latitude: 18.9712, Longitude: -72.2852},
	{Name: "Honduras", Latitude: 15.2, Longitude: -86.2419},
	{Name: "Hungary", Latitude: 47.1625, Longitude: 19.5033},
	{Name: "Iceland", Latitude: 64.9631, Longitude: -19.0208},
	{Name: "India", Latitude: 20.5937, Longitude: 78.9629},
	{Name: "Indonesia", Latitude: -0.7893, Longitude: 113.9213},
	{Name: "Iran", Latitude: 32.4279, Longitude: 53.688},
	{Name: "Iraq", Latitude: 33.2232, Longitude: 43.6793},
	{Name: "Ireland", Latitude: 53.4129, Longitude: -8.2439},
	{Name: "Israel", Latitude: 31.0461, Longitude: 34.8516},
	{Name: "Italy", Latitude: 41.8719, Longitude: 12.5674},
	{Name: "Jamaica", Latitude: 18.1096, Longitude: -77.2975},
	{Name: "Japan", Latitude: 36.2048, Longitude: 138.2529},
	{Name: "Jordan", Latitude: 30.5852, Longitude: 36.2384},
	{Name: "Kazakhstan", Latitude: 48.0196, Longitude: 66.9237},
	{Name: "Kenya", Latitude: -0.0236, Longitude: 37.9062},
	{Name: "Kiribati", Latitude: -3.3704, Longitude: -168.734},
	{Name: "Kuwait", Latitude: 29.3117, Longitude: 47.4818},
	{Name: "Kyrgyzstan", Latitude: 41.2044, Longitude: 74.7661},
	{Name: "Laos", Latitude: 19.8563, Longitude: 102.4955},
	{Name: "Latvia", Latitude: 56.8796, Longitude: 24.6032},
	{Name: "Lebanon", Latitude: 33.8547, Longitude: 35.8623},
	{Name: "Lesotho", Latitude: -29.6099, Longitude: 28.2336},
	{Name: "Liberia", Latitude: 6.4281, Longitude: -9.4295},
	{Name: "Libya", Latitude: 26.3351, Longitude: 17.2283},
	{Name: "Liechtenstein", Latitude: 47.166, Longitude: 9.5554},
	{Name: "Lithuania", Latitude: 55.1694, Longitude: 23.8813},
	{Name: "Luxembourg", Latitude: 49.8153, Longitude: 6.1296},
	{Name: "Madagascar", Latitude: -18.7669, Longitude: 46.8691},
	{Name: "Malawi", Latitude: -13.2543, Longitude: 34.3015},
	{Name: "Malaysia", Latitude: 4.2105, Longitude: 101.9758},
	{Name: "Maldives", Latitude: 3.2028, Longitude: 73.2207},
	{Name: "Mali", Latitude: 17.5707, Longitude: -3.9962},
	{Name: "Malta", Latitude: 35.9375, Longitude: 14.3754},
	{Name: "Marshall Islands", Latitude: 7.1315, Longitude: 171.1845},
	{Name: "Mauritania", Latitude: 21.0079, Longitude: -10.9408},
	{Name: "Mauritius", Latitude: -20.3484, Longitude: 57.5522},
	{Name: "Mexico", Latitude: 23.6345, Longitude: -102.5528},
	{Name: "Micronesia", Latitude: 7.4256, Longitude: 150.5508},
	{Name: "Moldova", Latitude: 47.4116, Longitude: 28.3699},
	{Name: "Monaco", Latitude: 43.7384, Longitude: 7.4246},
	{Name: "Mongolia", Latitude: 46.8625, Longitude: 103.8467},
	{Name: "Montenegro", Latitude: 42.7087, Longitude: 19.3744},
	{Name: "Morocco", Latitude: 31.7917, Longitude: -7.0926},
	{Name: "Mozambique", Latitude: -18.6657, Longitude: 35.5296},
	{Name: "Myanmar", Latitude: 21.9162, Longitude: 95.956},
	{Name: "Namibia", Latitude: -22.9576, Longitude: 18.4904},
	{Name: "Nauru", Latitude: -0.5228, Longitude: 166.9315},
	{Name: "Nepal", Latitude: 28.3949, Longitude: 84.124},
	{Name: "Netherlands", Latitude: 52.1326, Longitude: 5.2913},
	{Name: "New Zealand", Latitude: -40.9006, Longitude: 174.886},
	{Name: "Nicaragua", Latitude: 12.8654, Longitude: -85.2072},
	{Name: "Niger", Latitude: 17.6078, Longitude: 8.0817},
	{Name: "Nigeria", Latitude: 9.082, Longitude: 8.6753},
	{Name: "North Korea", Latitude: 40.3399, Longitude: 127.5101},
	{Name: "North Macedonia", Latitude: 41.6086, Longitude: 21.7453},
	{Name: "Norway", Latitude: 60.472, Longitude: 8.4689},
	{Name: "Oman", Latitude: 21.4735, Longitude: 55.9754},
	{Name: "Pakistan", Latitude: 30.3753, Longitude: 69.3451},
	{Name: "Palau", Latitude: 7.5149, Longitude: 134.5825},
	{Name: "Palestine", Latitude: 31.9522, Longitude: 35.2332},
	{Name: "Panama", Latitude: 8.537981, Longitude: -80.7821},
	{Name: "Papua New Guinea", Latitude: -6.314993, Longitude: 143.95555},
	{Name: "Paraguay", Latitude: -23.4425, Longitude: -58.4438},
	{Name: "Peru", Latitude: -9.19, Longitude: -75.0152},
	{Name: "Philippines", Latitude: 12.8797, Longitude: 121.774},
	{Name: "Poland", Latitude: 51.9194, Longitude: 19.1451},
	{Name: "Portugal", Latitude: 39.3999, Longitude: -8.2245},
	{Name: "Qatar", Latitude: 25.3548, Longitude: 51.1839},
	{Name: "Romania", Latitude: 45.9432, Longitude: 24.9668},
	{Name: "Russia", Latitude: 61.524, Longitude: 105.3188},
	{Name: "Rwanda", Latitude: -1.9403, Longitude: 29.8739},
	{Name: "Saint Kitts and Nevis", Latitude: 17.3578, Longitude: -62.783},
	{Name: "Saint Lucia", Latitude: 13.9094, Longitude: -60.9789},
	{Name: "Saint Vincent and the Grenadines", Latitude: 13.2528, Longitude: -61.1971},
	{Name: "Samoa", Latitude: -13.759, Longitude: -172.1046},
	{Name: "San Marino", Latitude: 43.9424, Longitude: 12.4578},
	{Name: "Sao Tome and Principe", Latitude: 0.1864, Longitude: 6.6131},
	{Name: "Saudi Arabia", Latitude: 23.8859, Longitude: 45.0792},
	{Name: "Senegal", Latitude: 14.4974, Longitude: -14.4524},
	{Name: "Serbia", Latitude: 44.0165, Longitude: 21.0059},
	{Name: "Seychelles", Latitude: -4.6796, Longitude: 55.492},
	{Name: "Sierra Leone", Latitude: 8.4606, Longitude: -11.7799},
	{Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198},
	{Name: "Slovakia", Latitude: 48.669, Longitude: 19.699},
	{Name: "Slovenia", Latitude: 46.1512, Longitude: 14.9955},
	{Name: "Solomon Islands", Latitude: -9.6457, Longitude: 160.1562},
	{Name: "Somalia", Latitude: 5.1521, Longitude: 46.1996},
	{Name: "South Africa", Latitude: -30.5595, Longitude: 22.9375},
	{Name: "South Korea", Latitude: 35.9078, Longitude: 127.7669},
	{Name: "South Sudan", Latitude: 6.877, Longitude: 31.307},
	{Name: "Spain", Latitude: 40.4637, Longitude: -3.7492},
	{Name: "Sri Lanka", Latitude: 7.8731, Longitude: 80.7718},
	{Name: "Sudan", Latitude: 12.8628, Longitude: 30.2176},
	{Name: "Suriname", Latitude: 3.9193, Longitude: -56.0278},
	{Name: "Sweden", Latitude: 60.1282, Longitude: 18.6435},
	{Name: "Switzerland", Latitude: 46.8182, Longitude: 8.2275},
	{Name: "Syria", Latitude: 34.8021, Longitude: 38.9968},
	{Name: "Taiwan", Latitude: 23.6978, Longitude: 120.9605},
	{Name: "Tajikistan", Latitude: 38.861, Longitude: 71.2761},
	{Name: "Tanzania", Latitude: -6.369, Longitude: 34.8888},
	{Name: "Thailand", Latitude: 15.87, Longitude: 100.9925},
	{Name: "Timor-Leste", Latitude: -8.8742, Longitude: 125.7275},
	{Name: "Togo", Latitude: 8.6195, Longitude: 0.8248},
	{Name: "Tonga", Latitude: -21.1789, Longitude: -175.1982},
	{Name: "Trinidad and Tobago", Latitude: 10.6918, Longitude: -61.2225},
	{Name: "Tunisia", Latitude: 33.8869, Longitude: 9.5375},
	{Name: "Turkey", Latitude: 38.9637, Longitude: 35.2433},
	{Name: "Turkmenistan", Latitude: 38.9697, Longitude: 59.5563},
	{Name: "Tuvalu", Latitude: -7.1095, Longitude: 179.194},
	{Name: "Uganda", Latitude: 1.3733, Longitude: 32.2903},
	{Name: "Ukraine", Latitude: 48.3794, Longitude: 31.1656},
	{Name: "United Arab Emirates", Latitude: 23.4241, Longitude: 53.8478},
	{Name: "United Kingdom", Latitude: 55.3781, Longitude: -3.436},
	{Name: "United States", Latitude: 37.0902, Longitude: -95.7129},
	{Name: "Uruguay", Latitude: -32.5228, Longitude: -55.7658},
	{Name: "Uzbekistan", Latitude: 41.3775, Longitude: 64.5853},
	{Name: "Vanuatu", Latitude: -15.3767, Longitude: 166.9592},
	{Name: "Vatican City", Latitude: 41.9029, Longitude: 12.4534},
	{Name: "Venezuela", Latitude: 6.4238, Longitude: -66.5897},
	{Name: "Vietnam", Latitude: 14.0583, Longitude: 108.2772},
	{Name: "Yemen", Latitude: 15.5527, Longitude: 48.5164},
	{Name: "Zambia", Latitude: -13.1339, Longitude: 27.8493},
	{Name: "Zimbabwe", Latitude: -19.0154, Longitude: 29.1549},
}
