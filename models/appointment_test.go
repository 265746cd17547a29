package models

import (
	"testing"
)

func TestTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		wantErr bool
	}{
		{"pending to approved", StatusPending, StatusApproved, false},
		{"pending to cancelled", StatusPending, StatusCancelled, false},
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"pending to pending", StatusPending, StatusPending, true},
		{"approved to completed", StatusApproved, StatusCompleted, false},
		{"approved to cancelled", StatusApproved, StatusCancelled, false},
		{"approved to pending", StatusApproved, StatusPending, true},
		{"completed terminal", StatusCompleted, StatusCancelled, true},
		{"cancelled terminal", StatusCancelled, StatusApproved, true},
		{"unknown current status", AppointmentStatus("weird"), StatusApproved, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			err := a.TransitionTo(tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("TransitionTo(%s -> %s) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
			if tt.wantErr && a.Status != tt.from {
				t.Errorf("status mutated on rejected transition: %s", a.Status)
			}
			if !tt.wantErr && a.Status != tt.to {
				t.Errorf("status not updated: got %s, want %s", a.Status, tt.to)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusApproved, StatusCancelled, StatusCompleted} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	if ValidStatus("confirmed") {
		t.Error("ValidStatus(confirmed) = true, status is not part of the graph")
	}
}
