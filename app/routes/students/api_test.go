package students

import (
	"testing"

	"github.com/mepraz/bluebells/app/models"
)

func TestStudentListResponse(t *testing.T) {
	page := []*models.Student{
		{ID: "stu-1", SID: "BB-001", Name: "Anita Sharma"},
		{ID: "stu-2", SID: "BB-002", Name: "Bikash Thapa"},
	}

	resp := studentListResponse(page, 7)

	if resp["success"] != true {
		t.Errorf("expected success=true, got %v", resp["success"])
	}
	data, ok := resp["data"].([]*models.Student)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 students under data, got %v", resp["data"])
	}
	if resp["count"] != 2 {
		t.Errorf("expected count=2, got %v", resp["count"])
	}
	if resp["total_count"] != 7 {
		t.Errorf("expected total_count=7, got %v", resp["total_count"])
	}
	if _, stale := resp["students"]; stale {
		t.Errorf("student pages must be wrapped in the data envelope")
	}
}

func TestStudentListResponseEmptyPage(t *testing.T) {
	resp := studentListResponse(nil, 0)
	if resp["count"] != 0 || resp["total_count"] != 0 {
		t.Errorf("expected zero counts, got count=%v total_count=%v", resp["count"], resp["total_count"])
	}
	if resp["success"] != true {
		t.Errorf("expected success=true on an empty page")
	}
}
