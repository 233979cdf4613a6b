package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitValidators(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	type form struct {
		Username string `json:"username" validate:"required,alphanum_"`
		Title    string `json:"title" validate:"notblank"`
		Date     string `json:"start_date" validate:"omitempty,isodate"`
	}

	tests := []struct {
		name string
		data form
		want map[string]string
	}{
		{name: "valid", data: form{Username: "jane_doe", Title: "x", Date: "2024-02-29"}},
		{
			name: "all wrong",
			data: form{Username: "jane-doe", Title: "   ", Date: "2023-02-29"},
			want: map[string]string{
				"username":   "only alphanumeric characters and underscores are allowed",
				"title":      "this field cannot be blank",
				"start_date": "start_date must be a valid date (YYYY-MM-DD)",
			},
		},
		{
			name: "required",
			data: form{Title: "x"},
			want: map[string]string{"username": "this field is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.data)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			got := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				got[fe.Field()] = fe.Translate(translator)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2024-01-31"))
	assert.False(t, IsDate("2024-1-31"))
	assert.False(t, IsDate("31/01/2024"))
	assert.False(t, IsDate(""))
}
