package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRecords() []Record {
	return []Record{
		{"id": 1, "name": "Ada Lovelace", "email": "ada@example.com"},
		{"id": 2, "name": "Grace Hopper", "email": "grace@navy.mil"},
		{"id": 3, "name": "Alan Turing", "email": "alan@bletchley.uk"},
		{"id": 4, "name": "Barbara Liskov", "email": nil},
	}
}

func recordIDs(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.ID())
	}
	return out
}

func TestSearchSpecFilterIsCaseInsensitiveOR(t *testing.T) {
	spec := SearchSpec{Fields: []string{"name", "email"}, Query: "ADA"}
	got := recordIDs(spec.Filter(sampleRecords()))
	// "ADA" matches Ada Lovelace's name and email but nobody else.
	want := []string{"1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}

	spec = SearchSpec{Fields: []string{"name", "email"}, Query: "a"}
	if got := len(spec.Filter(sampleRecords())); got != 4 {
		t.Fatalf("substring 'a' should match every record, got %d", got)
	}

	spec = SearchSpec{Fields: []string{"email"}, Query: "navy"}
	got = recordIDs(spec.Filter(sampleRecords()))
	want = []string{"2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("single-field filter mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchSpecDisabledReturnsInputUnchanged(t *testing.T) {
	records := sampleRecords()
	if got := len((SearchSpec{Query: "ada"}).Filter(records)); got != len(records) {
		t.Fatal("spec without fields should not filter")
	}
	if got := len((SearchSpec{Fields: []string{"name"}}).Filter(records)); got != len(records) {
		t.Fatal("spec without query should not filter")
	}
	if got := len((SearchSpec{Fields: []string{"name"}, Query: "   "}).Filter(records)); got != len(records) {
		t.Fatal("blank query should not filter")
	}
}

func TestSearchSpecSkipsNilAndMissingFields(t *testing.T) {
	spec := SearchSpec{Fields: []string{"email", "phone"}, Query: "liskov"}
	if got := len(spec.Filter(sampleRecords())); got != 0 {
		t.Fatalf("record with nil email and no phone should not match, got %d", got)
	}
}
