package dataset

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/loracharts/pkg/errors"
)

// DecodePoints reads points from r. JSON input is an array of Point objects;
// CSV input has label,value[,color] rows with an optional header row.
func DecodePoints(r io.Reader, format string) ([]Point, error) {
	switch strings.ToLower(format) {
	case "json":
		var pts []Point
		if err := json.NewDecoder(r).Decode(&pts); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode points")
		}
		return pts, nil
	case "csv":
		return decodeCSV(r)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported data format %q (must be json or csv)", format)
	}
}

func decodeCSV(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv")
	}

	pts := make([]Point, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "csv line %d: want label,value", i+1)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "csv line %d: value", i+1)
		}
		p := Point{Label: rec[0], Value: v}
		if len(rec) > 2 {
			p.Color = strings.TrimSpace(rec[2])
		}
		pts = append(pts, p)
	}
	return pts, nil
}
