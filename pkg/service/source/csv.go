package source

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// CSV is a lazy, single-pass row source. It reads the header once at open,
// canonicalizes it through the column mapping, and yields one UserRecord
// per data row from Next until io.EOF.
type CSV struct {
	f       *os.File
	dec     *csvutil.Decoder
	header  []string
	mapping *model.Mapping
	row     int
}

// csvRow mirrors the canonical schema; unmapped columns are collected from
// the decoder's unused set.
type csvRow struct {
	Username    string `csv:"username"`
	Email       string `csv:"email"`
	DisplayName string `csv:"display_name"`
	Group       string `csv:"group"`
}

// Open opens the CSV file and validates its header against the mapping
func Open(path string, mapping *model.Mapping) (*CSV, error) {
	if mapping == nil {
		mapping = model.DefaultMapping()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open input CSV",
			goerr.V("path", path),
			goerr.T(model.ErrTagInput))
	}

	r := csv.NewReader(f)
	rawHeader, err := r.Read()
	if err != nil {
		_ = f.Close()
		if errors.Is(err, io.EOF) {
			return nil, goerr.New("input CSV is empty",
				goerr.V("path", path),
				goerr.T(model.ErrTagInput))
		}
		return nil, goerr.Wrap(err, "failed to read CSV header",
			goerr.V("path", path),
			goerr.T(model.ErrTagInput))
	}

	header := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		header[i] = mapping.Canonicalize(strings.TrimSpace(h))
	}

	if err := checkHeader(header, mapping); err != nil {
		_ = f.Close()
		return nil, goerr.Wrap(err, "invalid CSV header",
			goerr.V("path", path),
			goerr.V("header", rawHeader))
	}

	dec, err := csvutil.NewDecoder(r, header...)
	if err != nil {
		_ = f.Close()
		return nil, goerr.Wrap(err, "failed to create CSV decoder",
			goerr.V("path", path),
			goerr.T(model.ErrTagInput))
	}

	return &CSV{
		f:       f,
		dec:     dec,
		header:  header,
		mapping: mapping,
	}, nil
}

// checkHeader ensures the columns the dispatcher depends on are present
func checkHeader(header []string, mapping *model.Mapping) error {
	if !slices.Contains(header, model.ColumnUsername) {
		return goerr.New("required column is missing",
			goerr.V("column", mapping.SourceColumn(model.ColumnUsername)),
			goerr.T(model.ErrTagInput))
	}
	if !slices.Contains(header, model.ColumnGroup) && mapping.DefaultGroup == "" {
		return goerr.New("required column is missing and no default group is configured",
			goerr.V("column", mapping.SourceColumn(model.ColumnGroup)),
			goerr.T(model.ErrTagInput))
	}
	return nil
}

// Next yields the next record, io.EOF after the last row. Any other error
// means the file is structurally malformed and the run must abort.
func (s *CSV) Next() (*model.UserRecord, error) {
	var row csvRow
	if err := s.dec.Decode(&row); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, goerr.Wrap(err, "malformed CSV row",
			goerr.V("row", s.row+1),
			goerr.T(model.ErrTagInput))
	}
	s.row++

	rec := &model.UserRecord{
		Username:    types.Username(strings.TrimSpace(row.Username)),
		Email:       strings.TrimSpace(row.Email),
		DisplayName: strings.TrimSpace(row.DisplayName),
		Group:       types.GroupName(strings.TrimSpace(row.Group)),
		Row:         s.row,
	}
	if rec.Group == "" {
		rec.Group = types.GroupName(s.mapping.DefaultGroup)
	}

	if unused := s.dec.Unused(); len(unused) > 0 {
		record := s.dec.Record()
		rec.Extra = make(map[string]string, len(unused))
		for _, i := range unused {
			rec.Extra[s.header[i]] = record[i]
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Close closes the underlying file
func (s *CSV) Close() error {
	if err := s.f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close input CSV")
	}
	return nil
}
