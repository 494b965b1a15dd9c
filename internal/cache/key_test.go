package cache

import "testing"

func TestQueryKeyString(t *testing.T) {
	t.Parallel()

	key := QueryKey{
		Prefix:   "realuseragent",
		Category: "software_name",
		Name:     "internet-explorer",
		Pages:    3,
		OrderBy:  "-times_seen",
	}

	want := "realuseragent_software_name_internet-explorer_3_-times_seen"
	if got := key.String(); got != want {
		t.Fatalf("unexpected key:\n got %s\nwant %s", got, want)
	}

	other := key
	other.Pages = 1
	if other.String() == key.String() {
		t.Fatalf("page count must be part of the key")
	}
}
