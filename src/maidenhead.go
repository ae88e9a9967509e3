package ft8token

/*------------------------------------------------------------------
 *
 * Purpose:   	Turn Maidenhead locators into positions, so a grid
 *		field heard in an exchange can be shown as a distance
 *		and direction from the home station.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

var ErrInvalidLocator = errors.New("invalid Maidenhead locator")

/* Mean radius of the earth. */

const R_KM = 6371

/*------------------------------------------------------------------
 *
 * Function:	GridToLatLong
 *
 * Purpose:	Convert Maidenhead locator to latitude and longitude.
 *
 * Inputs:	locator	- 2, 4, 6, 8, 10, or 12 character grid square locator.
 *			  Upper or lower case.
 *
 * Returns:	Latitude and longitude of the centre of the smallest
 *		square given, in degrees.
 *		Error wrapping ErrInvalidLocator if the locator is malformed.
 *
 * Rambling:	What sort of resolution does this provide?
 *		For 8 character form, each latitude unit is 0.25 minute.
 *		(Longitude can be up to twice that around the equator.)
 *		The 4 character form sent in FT8 is 1 x 2 degrees,
 *		about 111 x 160 km at mid latitudes.
 *
 *------------------------------------------------------------------*/

const MH_MIN_PAIR = 1
const MH_MAX_PAIR = 6
const MH_UNITS = (18 * 10 * 24 * 10 * 24 * 10 * 2)

type mhPair struct {
	position string
	min_ch   byte
	max_ch   byte
	value    int
}

var mhPairs = []mhPair{
	{"first", 'A', 'R', 10 * 24 * 10 * 24 * 10 * 2},
	{"second", '0', '9', 24 * 10 * 24 * 10 * 2},
	{"third", 'A', 'X', 10 * 24 * 10 * 2},
	{"fourth", '0', '9', 24 * 10 * 2},
	{"fifth", 'A', 'X', 10 * 2},
	{"sixth", '0', '9', 2},
} // Even so we can get center of square.

func GridToLatLong(locator string) (float64, float64, error) {
	// Upper case first.  Some non-ASCII letters change length.
	var mh = strings.ToUpper(locator)

	var np = len(mh) / 2 /* Number of pairs of characters. */

	if len(mh)%2 != 0 || np < MH_MIN_PAIR || np > MH_MAX_PAIR {
		return 0, 0, fmt.Errorf("%w: \"%s\" must be from 1 to %d pairs of characters", ErrInvalidLocator, locator, MH_MAX_PAIR)
	}

	var ilat, ilon int
	for n := range np {
		var p = mhPairs[n]

		if mh[2*n] < p.min_ch || mh[2*n] > p.max_ch ||
			mh[2*n+1] < p.min_ch || mh[2*n+1] > p.max_ch {
			return 0, 0, fmt.Errorf("%w: the %s pair of characters in \"%s\" must be in range of %c thru %c",
				ErrInvalidLocator, p.position, locator, p.min_ch, p.max_ch)
		}

		ilon += int(mh[2*n]-p.min_ch) * p.value
		ilat += int(mh[2*n+1]-p.min_ch) * p.value

		if n == np-1 { // If last pair, take center of square.
			ilon += p.value / 2
			ilat += p.value / 2
		}
	}

	var dlat = float64(ilat)/MH_UNITS*180. - 90.
	var dlon = float64(ilon)/MH_UNITS*360. - 180.

	return dlat, dlon, nil
}

// GridToLatLng is GridToLatLong for callers working with s2.
func GridToLatLng(locator string) (s2.LatLng, error) {
	var lat, lon, err = GridToLatLong(locator)
	if err != nil {
		return s2.LatLng{}, err
	}

	return s2.LatLngFromDegrees(lat, lon), nil
}

/*------------------------------------------------------------------
 *
 * Function:	GridDistanceKm
 *
 * Purpose:	Great circle distance between the centres of two locators.
 *
 *------------------------------------------------------------------*/

func GridDistanceKm(from, to string) (float64, error) {
	var a, b, err = gridPair(from, to)
	if err != nil {
		return 0, err
	}

	return a.Distance(b).Radians() * R_KM, nil
}

/*------------------------------------------------------------------
 *
 * Function:	GridBearingDeg
 *
 * Purpose:	Initial bearing from one locator to another.
 *
 * Returns:	Degrees, 0 - 360, clockwise from true north.
 *
 *------------------------------------------------------------------*/

func GridBearingDeg(from, to string) (float64, error) {
	var a, b, err = gridPair(from, to)
	if err != nil {
		return 0, err
	}

	var lat1, lat2 = a.Lat.Radians(), b.Lat.Radians()
	var dlon = (b.Lng - a.Lng).Radians()

	var brg = s1.Angle(math.Atan2(math.Sin(dlon)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon)))

	var d = brg.Degrees()
	if d < 0 {
		d += 360
	}

	return d, nil
}

func gridPair(from, to string) (s2.LatLng, s2.LatLng, error) {
	var a, aErr = GridToLatLng(from)
	if aErr != nil {
		return s2.LatLng{}, s2.LatLng{}, fmt.Errorf("from: %w", aErr)
	}

	var b, bErr = GridToLatLng(to)
	if bErr != nil {
		return s2.LatLng{}, s2.LatLng{}, fmt.Errorf("to: %w", bErr)
	}

	return a, b, nil
}
