package model

import (
	"sort"
	"testing"
)

func TestOrderStatusRank(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected int
	}{
		{StatusNew, 1},
		{StatusInProgress, 2},
		{StatusReady, 3},
		{OrderStatus("Cancelled"), 4},
		{OrderStatus(""), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Rank(); got != tt.expected {
				t.Errorf("Rank() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestOrderStatusRankOrdering(t *testing.T) {
	statuses := []OrderStatus{StatusReady, OrderStatus("Archived"), StatusNew, StatusInProgress}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Rank() < statuses[j].Rank()
	})

	expected := []OrderStatus{StatusNew, StatusInProgress, StatusReady, OrderStatus("Archived")}
	for i := range expected {
		if statuses[i] != expected[i] {
			t.Fatalf("position %d: got %q, expected %q", i, statuses[i], expected[i])
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected bool
	}{
		{StatusNew, true},
		{StatusInProgress, true},
		{StatusReady, true},
		{OrderStatus("Done"), false},
		{OrderStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.expected {
			t.Errorf("Valid(%q) = %v, expected %v", tt.status, got, tt.expected)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleEmployee.Valid() {
		t.Error("expected the known roles to be valid")
	}
	if Role("manager").Valid() {
		t.Error("expected an unknown role to be invalid")
	}
}
