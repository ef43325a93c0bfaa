package analyze

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// reader resolves each cell's stored kind. Dates in xlsx are usually
// numbers with a date number format, so the cell style decides them.
type reader struct {
	file       *excelize.File
	dateStyles map[int]bool
}

func (r *reader) rows(sheet string) ([][]Cell, error) {
	raw, err := r.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	rows := make([][]Cell, len(raw))
	for i, values := range raw {
		rows[i] = make([]Cell, len(values))
		for j, value := range values {
			if strings.TrimSpace(value) == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			kind, err := r.kind(sheet, ref, value)
			if err != nil {
				return nil, err
			}
			rows[i][j] = Cell{Value: value, Kind: kind}
		}
	}
	return rows, nil
}

func (r *reader) kind(sheet, ref, value string) (CellKind, error) {
	typ, err := r.file.GetCellType(sheet, ref)
	if err != nil {
		return KindNull, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return KindBool, nil
	case excelize.CellTypeDate:
		return KindDate, nil
	case excelize.CellTypeError:
		// #N/A and friends read as missing
		return KindNull, nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		isDate, err := r.isDateStyled(sheet, ref)
		if err != nil {
			return KindNull, err
		}
		if isDate {
			return KindDate, nil
		}
		return numberKind(value), nil
	default:
		// shared strings, inline strings and string formula results
		return KindString, nil
	}
}

func (r *reader) isDateStyled(sheet, ref string) (bool, error) {
	id, err := r.file.GetCellStyle(sheet, ref)
	if err != nil || id == 0 {
		return false, err
	}
	if isDate, ok := r.dateStyles[id]; ok {
		return isDate, nil
	}

	style, err := r.file.GetStyle(id)
	if err != nil {
		return false, err
	}
	isDate := builtInDateFormat(style.NumFmt)
	if style.CustomNumFmt != nil {
		isDate = dateFormatCode(*style.CustomNumFmt)
	}
	r.dateStyles[id] = isDate
	return isDate, nil
}

func numberKind(value string) CellKind {
	s := strings.TrimSpace(value)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return KindInt
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return KindFloat
	}
	return KindString
}

// builtInDateFormat reports whether a built-in number format id renders a
// date or time, CJK locale ids included.
func builtInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// literal text, escapes and [Red]/[$-409] sections carry no date tokens
var formatNoise = regexp.MustCompile(`"[^"]*"|\\.|\[[^\]]*\]`)

func dateFormatCode(code string) bool {
	stripped := strings.ToLower(formatNoise.ReplaceAllString(code, ""))
	return strings.ContainsAny(stripped, "ymdhs")
}
