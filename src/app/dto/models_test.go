package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffrecords/src/core/domain"
)

func TestEmployeeFromDomain_JSON(t *testing.T) {
	emp := domain.RestoreEmployee(domain.EmployeeRecord{ID: 7, Name: "Ana Li", JobTitle: "Engineer", DepartmentID: 2}, nil)

	raw, err := json.Marshal(EmployeeFromDomain(emp))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Ana Li","job_title":"Engineer","department_id":2}`, string(raw))
}

func TestReviewFromDomain_JSON(t *testing.T) {
	rev := domain.RestoreReview(domain.ReviewRecord{ID: 3, Year: 2023, Summary: "Good work", EmployeeID: 7}, nil)

	raw, err := json.Marshal(ReviewFromDomain(rev))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"year":2023,"summary":"Good work","employee_id":7}`, string(raw))
}

func TestLists_EmptyIsNotNull(t *testing.T) {
	raw, err := json.Marshal(DepartmentList(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	raw, err = json.Marshal(ReviewList([]*domain.Review{}))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestDepartmentList_KeepsOrder(t *testing.T) {
	ds := []*domain.Department{
		domain.RestoreDepartment(domain.DepartmentRecord{ID: 1, Name: "Platform"}),
		domain.RestoreDepartment(domain.DepartmentRecord{ID: 2, Name: "Sales"}),
	}

	got := DepartmentList(ds)
	require.Len(t, got, 2)
	assert.Equal(t, "Platform", got[0].Name)
	assert.Equal(t, int64(2), got[1].ID)
}
