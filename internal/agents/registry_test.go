package agents

import "testing"

func TestRegistryHasBuiltins(t *testing.T) {
	if !Exists("random") {
		t.Fatal(`expected "random" to be registered`)
	}
	if !Exists("dellacherie") {
		t.Fatal(`expected "dellacherie" to be registered`)
	}
	if Exists("not-a-real-policy") {
		t.Fatal("unregistered id reported as existing")
	}
}

func TestRegistryCreateUnknownErrors(t *testing.T) {
	if _, err := Create("nope", 0); err == nil {
		t.Fatal("expected an error creating an unknown policy")
	}
}

func TestRegistryCreateKnown(t *testing.T) {
	a, err := Create("random", 7)
	if err != nil {
		t.Fatalf("Create(random) error: %v", err)
	}
	if a.Name() == "" {
		t.Fatal("expected a non-empty agent name")
	}
}

func TestRegistryListSortedByID(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected at least 2 registered policies, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted by ID: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Register to panic on a duplicate id")
		}
	}()
	Register("random", "Random Again", func(seed int64) Agent { return NewRandomAgent(seed) })
}

func TestSetDefaultDellacherieWeightsAffectsFutureInstances(t *testing.T) {
	original := DefaultDellacherieWeights()
	defer SetDefaultDellacherieWeights(original)

	tuned := original
	tuned.Holes = -42
	SetDefaultDellacherieWeights(tuned)

	a, err := Create("dellacherie", 0)
	if err != nil {
		t.Fatalf("Create(dellacherie) error: %v", err)
	}
	da, ok := a.(*DellacherieAgent)
	if !ok {
		t.Fatalf("expected *DellacherieAgent, got %T", a)
	}
	if da.weights.Holes != -42 {
		t.Fatalf("expected tuned weights to propagate, got %+v", da.weights)
	}
}
