package ft8token

/*------------------------------------------------------------------
 *
 * Purpose:   	Classify the individual fields of an FT8 / FT4 style
 *		contact exchange.
 *
 * Description:	A decoded message such as
 *
 *			KK5JY N5OSL EM16
 *			N5OSL KK5JY R-05
 *			KK5JY N5OSL RR73
 *
 *		is split into fields by the caller.  Each field is
 *		then one of a few things: a callsign, a grid locator,
 *		a signal report, or one of the acknowledgement codes.
 *
 *		Everything here is a pure function of the token text.
 *		Case does not matter.
 *
 *---------------------------------------------------------------*/

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

/*------------------------------------------------------------------
 *
 * Name:        IsReport
 *
 * Purpose:     Is this a signal report?
 *
 * Inputs:	token	- "+NN" or "-NN", or "R+NN" / "R-NN" meaning
 *			  roger plus report.
 *
 * Returns:	True if it has the shape of a report.
 *		The magnitude is not checked so "+99" is accepted.
 *
 *----------------------------------------------------------------*/

func IsReport(token string) bool {
	if token == "" {
		return false
	}

	var r = []rune(strings.ToUpper(token))

	switch len(r) {
	case 3:
		return isSign(r[0]) && allDigits(r[1:])
	case 4:
		return r[0] == 'R' && isSign(r[1]) && allDigits(r[2:])
	}

	return false
}

/*------------------------------------------------------------------
 *
 * Name:        IsRoger
 *
 * Purpose:     Does the token acknowledge receipt?
 *
 * Returns:	True for "RRR", "RR73", or a report with leading "R".
 *
 *----------------------------------------------------------------*/

func IsRoger(token string) bool {
	if token == "" {
		return false
	}

	var s = strings.ToUpper(token)

	return s == "RRR" || s == "RR73" || (s[0] == 'R' && IsReport(s))
}

// Is73 is true for the end of contact codes "73", "RR73" and "TU73".
func Is73(token string) bool {
	if token == "" {
		return false
	}

	switch strings.ToUpper(token) {
	case "RR73", "73", "TU73":
		return true
	}

	return false
}

/*------------------------------------------------------------------
 *
 * Name:        IsGrid
 *
 * Purpose:     Is this a 4 character Maidenhead locator such as EM16?
 *
 * Description:	"RR73" and "TU73" have the same shape, two letters
 *		then two digits.  They must be rejected before looking
 *		at the shape, otherwise they would be taken for grids.
 *
 *----------------------------------------------------------------*/

func IsGrid(token string) bool {
	if token == "" {
		return false
	}

	var s = strings.ToUpper(token)

	if s == "RR73" || s == "TU73" {
		return false
	}

	var r = []rune(s)

	return len(r) == 4 &&
		unicode.IsLetter(r[0]) && unicode.IsLetter(r[1]) &&
		unicode.IsDigit(r[2]) && unicode.IsDigit(r[3])
}

/*------------------------------------------------------------------
 *
 * Name:        IsCall
 *
 * Purpose:     Does the token look like a callsign?
 *
 * Inputs:	token	- Possibly with prefix or suffix, e.g. KK5JY/R or
 *			  VE3/AB0CD.  It may also be wrapped in <...>, which
 *			  is how a hashed callsign is shown.
 *
 * Returns:	True if made only of letters, digits, and "/",
 *		with at least one digit and at least two letters.
 *
 * Description:	This is only a shape check.  There is no attempt to
 *		verify that the prefix has been allocated to anyone.
 *
 *		The order of the checks matters.  A grid locator also
 *		has letters and digits so it has to be excluded first.
 *
 *----------------------------------------------------------------*/

func IsCall(token string) bool {
	if token == "" {
		return false
	}

	if strings.ToUpper(token) == "RR73" {
		return false
	}

	if IsGrid(token) {
		return false
	}

	var digits, letters, other int

	for _, ch := range stripBrackets(token) {
		switch {
		case unicode.IsDigit(ch):
			digits++
		case unicode.IsLetter(ch):
			letters++
		case ch == '/':
			// Any number of these.
		default:
			other++
		}
	}

	return other == 0 && digits >= 1 && letters >= 2
}

/*------------------------------------------------------------------
 *
 * Name:        BaseCall
 *
 * Purpose:     Remove any prefix or suffix from a callsign.
 *
 * Inputs:	token	- Something that IsCall accepts.
 *
 * Returns:	The base callsign, upper case, and true.
 *		"", false if the token is not a callsign or none of the
 *		parts separated by "/" is a callsign on its own.
 *
 * Examples:	KK5JY/R		-> KK5JY
 *		N5OSL/3		-> N5OSL
 *		<AB0CD/33>	-> AB0CD
 *		VE3/AB0CD	-> AB0CD
 *
 * Description:	When more than one part looks like a callsign, e.g.
 *		AB0CD/VE3AB, the longest one is picked.  For equal
 *		lengths, the one further left wins.  That is a guess;
 *		nothing in the message format says which part is which.
 *
 *----------------------------------------------------------------*/

func BaseCall(token string) (string, bool) {
	if !IsCall(token) {
		return "", false
	}

	var s = stripBrackets(strings.ToUpper(token))

	var parts = strings.Split(s, "/")
	if len(parts) == 1 {
		return s, true
	}

	var result string
	var found bool

	for _, part := range parts {
		if !IsCall(part) {
			continue
		}

		if !found || utf8.RuneCountInString(part) > utf8.RuneCountInString(result) {
			result = part
			found = true
		}
	}

	return result, found
}

// stripBrackets removes the <...> placeholder wrapping, only when both ends are there.
func stripBrackets(s string) string {
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		s = strings.TrimPrefix(s, "<")
		s = strings.TrimSuffix(s, ">")
	}

	return s
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}

func allDigits(r []rune) bool {
	for _, c := range r {
		if !unicode.IsDigit(c) {
			return false
		}
	}

	return len(r) > 0
}
