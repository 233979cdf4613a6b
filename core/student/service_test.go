package student_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/student"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	svc := student.NewService(inmemdb.NewStudentRepository(inmemdb.NewSeeded()))

	t.Run("Filter", func(t *testing.T) {
		tests := []struct {
			filter student.QueryFilter
			want   int
		}{
			{student.QueryFilter{}, 36},
			{student.QueryFilter{Level: "1"}, 21},
			{student.QueryFilter{Level: " 2 "}, 15},
			{student.QueryFilter{ClassroomID: "C2"}, 10},
			{student.QueryFilter{Level: "2", ClassroomID: "C1"}, 0},
			{student.QueryFilter{IDs: []string{"S1", " S36"}}, 2},
		}
		for _, tt := range tests {
			students, err := svc.Filter(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, students, tt.want, "%+v", tt.filter)
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		stu, err := svc.GetByID(ctx, " S12 ")
		require.NoError(t, err)
		assert.Equal(t, student.Student{ID: "S12", Name: "Student 12", Level: 1, ClassroomID: "C2"}, stu)

		_, err = svc.GetByID(ctx, "S99")
		assert.ErrorIs(t, err, student.ErrNotFound)
	})

	t.Run("Levels", func(t *testing.T) {
		levels, err := svc.Levels(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, levels)
	})

	t.Run("ClassroomRoster", func(t *testing.T) {
		classroom, students, err := svc.ClassroomRoster(ctx, "C3")
		require.NoError(t, err)
		assert.Equal(t, "Class 2A", classroom.Name)
		require.Len(t, students, 15)
		assert.Equal(t, "S22", students[0].ID)

		_, _, err = svc.ClassroomRoster(ctx, "C9")
		assert.ErrorIs(t, err, student.ErrClassroomNotFound)
	})

	t.Run("Sessions", func(t *testing.T) {
		sessions, err := svc.Sessions(ctx)
		require.NoError(t, err)
		assert.Len(t, sessions, 10)

		_, err = svc.GetSession(ctx, "SES11")
		assert.ErrorIs(t, err, student.ErrSessionNotFound)
	})
}
