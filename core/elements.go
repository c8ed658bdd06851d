package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signalsfoundry/cosmopulse/model"
)

// tleLineLength is the fixed width of a standard two-line element line.
const tleLineLength = 69

// ParseError reports a malformed field in a two-line element record. The
// record that produced it must be skipped by the caller; a ParseError is
// never accompanied by a partially populated element set.
type ParseError struct {
	Field string
	Line  int // 1 or 2
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("element record line %d: field %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseElementSet parses a two-line element pair into a structured element
// set. Fields are read from the standard fixed character columns of line 2.
// Any malformed field yields a *ParseError naming the offending field;
// callers never receive a zeroed record on failure.
func ParseElementSet(line1, line2 string) (*model.OrbitalElementSet, error) {
	line1 = strings.TrimRight(line1, "\r\n ")
	line2 = strings.TrimRight(line2, "\r\n ")

	if len(line1) != tleLineLength {
		return nil, &ParseError{Field: "line1", Line: 1,
			Err: fmt.Errorf("length %d, want %d", len(line1), tleLineLength)}
	}
	if len(line2) != tleLineLength {
		return nil, &ParseError{Field: "line2", Line: 2,
			Err: fmt.Errorf("length %d, want %d", len(line2), tleLineLength)}
	}
	if !strings.HasPrefix(line1, "1 ") {
		return nil, &ParseError{Field: "line1", Line: 1,
			Err: fmt.Errorf("must start with %q", "1 ")}
	}
	if !strings.HasPrefix(line2, "2 ") {
		return nil, &ParseError{Field: "line2", Line: 2,
			Err: fmt.Errorf("must start with %q", "2 ")}
	}

	inclination, err := parseElementField(line2, 8, 16, "inclination")
	if err != nil {
		return nil, err
	}
	raan, err := parseElementField(line2, 17, 25, "raan")
	if err != nil {
		return nil, err
	}
	eccentricity, err := parseEccentricity(line2)
	if err != nil {
		return nil, err
	}
	argPerigee, err := parseElementField(line2, 34, 42, "argument of perigee")
	if err != nil {
		return nil, err
	}
	meanAnomaly, err := parseElementField(line2, 43, 51, "mean anomaly")
	if err != nil {
		return nil, err
	}
	meanMotion, err := parseElementField(line2, 52, 63, "mean motion")
	if err != nil {
		return nil, err
	}

	return &model.OrbitalElementSet{
		Line1:            line1,
		Line2:            line2,
		InclinationDeg:   inclination,
		RAANDeg:          raan,
		Eccentricity:     eccentricity,
		ArgPerigeeDeg:    argPerigee,
		MeanAnomalyDeg:   meanAnomaly,
		MeanMotionRevDay: meanMotion,
	}, nil
}

func parseElementField(line2 string, lo, hi int, field string) (float64, error) {
	raw := strings.TrimSpace(line2[lo:hi])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Line: 2, Err: err}
	}
	return v, nil
}

// parseEccentricity reads columns 27-33 of line 2, which carry the
// eccentricity with an implicit leading "0.".
func parseEccentricity(line2 string) (float64, error) {
	raw := strings.TrimSpace(line2[26:33])
	if raw == "" {
		return 0, &ParseError{Field: "eccentricity", Line: 2,
			Err: fmt.Errorf("empty field")}
	}
	v, err := strconv.ParseFloat("0."+raw, 64)
	if err != nil {
		return 0, &ParseError{Field: "eccentricity", Line: 2, Err: err}
	}
	return v, nil
}
