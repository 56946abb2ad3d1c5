package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard-backend/internal/users"
)

func seed(t *testing.T, svc *Service, posterID, title, location, jobType string) Job {
	t.Helper()
	job, err := svc.Create(context.Background(), posterID, Input{
		Title:       title,
		Company:     "Acme",
		Location:    location,
		Description: "Build things.",
		JobType:     jobType,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Keep creation order stable for newest-first assertions.
	time.Sleep(time.Millisecond)
	return job
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	cases := []struct {
		name string
		in   Input
	}{
		{"blank title", Input{Company: "Acme", Description: "d"}},
		{"blank company", Input{Title: "t", Description: "d"}},
		{"blank description", Input{Title: "t", Company: "Acme"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "poster-1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateStartsOpenWithZeroApplications(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	job := seed(t, svc, "poster-1", "Backend Engineer", "Remote", "full-time")

	if job.Status != StatusOpen {
		t.Fatalf("expected open status, got %q", job.Status)
	}
	if job.ApplicationCount != 0 {
		t.Fatalf("expected zero applications, got %d", job.ApplicationCount)
	}
}

func TestUpdateRequiresOwnerOrAdmin(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	job := seed(t, svc, "poster-1", "Backend Engineer", "Remote", "full-time")

	in := Input{Title: "Senior Backend Engineer", Company: "Acme", Description: "Build more things."}

	if _, err := svc.Update(context.Background(), job.ID, "poster-2", users.RolePoster, in); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	updated, err := svc.Update(context.Background(), job.ID, "admin-1", users.RoleAdmin, in)
	if err != nil {
		t.Fatalf("admin Update: %v", err)
	}
	if updated.Title != "Senior Backend Engineer" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
}

func TestSetStatusValidatesEnum(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	job := seed(t, svc, "poster-1", "Backend Engineer", "Remote", "full-time")

	if _, err := svc.SetStatus(context.Background(), job.ID, "poster-1", users.RolePoster, "paused"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	closed, err := svc.SetStatus(context.Background(), job.ID, "poster-1", users.RolePoster, StatusClosed)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if closed.Status != StatusClosed {
		t.Fatalf("expected closed, got %q", closed.Status)
	}
}

func TestListFiltersAndPages(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seed(t, svc, "poster-1", "Backend Engineer", "Berlin", "full-time")
	seed(t, svc, "poster-1", "Frontend Engineer", "Berlin", "part-time")
	seed(t, svc, "poster-2", "Data Analyst", "Lisbon", "full-time")

	listed, total, err := svc.List(context.Background(), Filter{Query: "engineer"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(listed) != 2 {
		t.Fatalf("expected 2 engineer matches, got total=%d len=%d", total, len(listed))
	}

	listed, total, err = svc.List(context.Background(), Filter{Location: "berlin", JobType: "full-time"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || listed[0].Title != "Backend Engineer" {
		t.Fatalf("expected the Berlin full-time job, got total=%d %+v", total, listed)
	}

	listed, total, err = svc.List(context.Background(), Filter{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(listed) != 2 {
		t.Fatalf("expected page of 2 from 3, got total=%d len=%d", total, len(listed))
	}
	if listed[0].Title != "Data Analyst" {
		t.Fatalf("expected newest first, got %q", listed[0].Title)
	}

	listed, _, err = svc.List(context.Background(), Filter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Backend Engineer" {
		t.Fatalf("expected oldest job on last page, got %+v", listed)
	}
}

func TestDeleteRequiresOwner(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	job := seed(t, svc, "poster-1", "Backend Engineer", "Remote", "full-time")

	if err := svc.Delete(context.Background(), job.ID, "poster-2", users.RolePoster); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), job.ID, "poster-1", users.RolePoster); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), job.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
