package entities

import "testing"

func TestNode_Validate(t *testing.T) {
	validNode := Node{ID: "MFG1", CanManufacture: true, ProductionRatePerHour: 100, StorageMode: StorageBoth}
	if err := validNode.Validate(); err != nil {
		t.Fatalf("expected valid node to pass validation: %v", err)
	}

	testCases := []struct {
		name        string
		node        Node
		expectError string
	}{
		{
			name:        "empty id",
			node:        Node{ID: ""},
			expectError: "id must not be empty",
		},
		{
			name:        "manufacture without rate",
			node:        Node{ID: "MFG1", CanManufacture: true, ProductionRatePerHour: 0},
			expectError: "requires production_rate_per_hour > 0",
		},
		{
			name:        "negative overhead",
			node:        Node{ID: "MFG1", StartupHours: -1},
			expectError: "overhead hours cannot be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.node.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tc.expectError)
			}
			if !contains(err.Error(), tc.expectError) {
				t.Errorf("expected error containing %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestNode_SupportsState(t *testing.T) {
	both := Node{StorageMode: StorageBoth}
	frozenOnly := Node{StorageMode: StorageFrozen}
	ambientOnly := Node{StorageMode: StorageAmbient}

	if !both.SupportsState(Frozen) || !both.SupportsState(Ambient) || !both.SupportsState(Thawed) {
		t.Errorf("StorageBoth node should support every state")
	}
	if !frozenOnly.SupportsState(Frozen) || frozenOnly.SupportsState(Ambient) {
		t.Errorf("StorageFrozen node should support only frozen")
	}
	if !ambientOnly.SupportsState(Ambient) || !ambientOnly.SupportsState(Thawed) || ambientOnly.SupportsState(Frozen) {
		t.Errorf("StorageAmbient node should support ambient and thawed, not frozen")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
