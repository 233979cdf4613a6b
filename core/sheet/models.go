package sheet

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

// Column keys of a Row.
const (
	ColA = "colA"
	ColB = "colB"
	ColC = "colC"
	ColD = "colD"
	ColE = "colE"
)

var Columns = []string{ColA, ColB, ColC, ColD, ColE}

// Sheet is a free-form table of 5 text columns.
type Sheet struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Rows []Row  `json:"rows" db:"-"`
}

type Row struct {
	ID   string `json:"id" db:"id" validate:"required"`
	ColA string `json:"colA" db:"col_a"`
	ColB string `json:"colB" db:"col_b"`
	ColC string `json:"colC" db:"col_c"`
	ColD string `json:"colD" db:"col_d"`
	ColE string `json:"colE" db:"col_e"`
}

// Set sets the cell of column col. It reports false for an unknown column.
func (r *Row) Set(col, value string) bool {
	switch col {
	case ColA:
		r.ColA = value
	case ColB:
		r.ColB = value
	case ColC:
		r.ColC = value
	case ColD:
		r.ColD = value
	case ColE:
		r.ColE = value
	default:
		return false
	}
	return true
}

type ReplaceRows struct {
	Rows []Row `json:"rows" validate:"dive"`
}

func (rr *ReplaceRows) Validate(validate *validator.Validate) error {
	for i := range rr.Rows {
		rr.Rows[i].ID = core.CleanString(rr.Rows[i].ID)
	}
	return validate.Struct(rr)
}

type UpdateCell struct {
	Column string `json:"column" validate:"required,oneof=colA colB colC colD colE"`
	Value  string `json:"value"`
}

func (uc *UpdateCell) Validate(validate *validator.Validate) error {
	uc.Column = core.CleanString(uc.Column)
	return validate.Struct(uc)
}
