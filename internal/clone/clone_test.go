package clone

import "testing"

type inner struct {
	Labels map[string]string
}

type outer struct {
	Name  string
	Ptr   *int
	Inner inner
	Items []int
}

func intPtr(v int) *int {
	return &v
}

func TestValueDeepCopiesNestedState(t *testing.T) {
	original := outer{
		Name:  "a",
		Ptr:   intPtr(5),
		Inner: inner{Labels: map[string]string{"env": "prod"}},
		Items: []int{1, 2, 3},
	}

	copied := Value(original)

	copied.Inner.Labels["env"] = "qa"
	copied.Items[0] = 99
	*copied.Ptr = 42

	if original.Inner.Labels["env"] != "prod" {
		t.Fatalf("map aliased: %q", original.Inner.Labels["env"])
	}
	if original.Items[0] != 1 {
		t.Fatalf("slice aliased: %d", original.Items[0])
	}
	if *original.Ptr != 5 {
		t.Fatalf("pointer aliased: %d", *original.Ptr)
	}
}

func TestValueHandlesNilContainers(t *testing.T) {
	copied := Value(outer{})
	if copied.Ptr != nil || copied.Items != nil || copied.Inner.Labels != nil {
		t.Fatalf("nil containers should stay nil: %+v", copied)
	}
}

func TestSliceCopiesElements(t *testing.T) {
	original := []map[string]int{{"a": 1}}
	copied := Slice(original)
	copied[0]["a"] = 2
	if original[0]["a"] != 1 {
		t.Fatalf("element aliased: %d", original[0]["a"])
	}
	if Slice[int](nil) != nil {
		t.Fatalf("nil slice should stay nil")
	}
}
