package useragent

import "testing"

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, ignored := Config{}.withDefaults()
	if len(ignored) != 0 {
		t.Fatalf("zero config must not report ignored settings: %v", ignored)
	}
	if cfg.Timeout != 5 || cfg.CacheTTL != 86400 || cfg.CacheKeyPrefix != "realuseragent" || cfg.PageNum != 1 {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestConfigClamping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pageNum int
		want    int
		ignored bool
	}{
		{pageNum: 20, want: 1, ignored: true},
		{pageNum: 12, want: 1, ignored: true},
		{pageNum: -1, want: 1, ignored: true},
		{pageNum: 11, want: 11},
		{pageNum: 3, want: 3},
	}

	for _, tc := range cases {
		cfg, ignored := Config{PageNum: tc.pageNum}.withDefaults()
		if cfg.PageNum != tc.want {
			t.Fatalf("page_num %d: expected %d, got %d", tc.pageNum, tc.want, cfg.PageNum)
		}
		if (len(ignored) > 0) != tc.ignored {
			t.Fatalf("page_num %d: unexpected ignored list %v", tc.pageNum, ignored)
		}
	}

	cfg, ignored := Config{Timeout: -3, BaseURL: "not a url"}.withDefaults()
	if cfg.Timeout != 5 {
		t.Fatalf("negative timeout must fall back to 5, got %d", cfg.Timeout)
	}
	if len(ignored) != 2 {
		t.Fatalf("expected timeout and base_url to be reported, got %v", ignored)
	}
}

func TestNewNeverFailsOnInvalidSettings(t *testing.T) {
	t.Parallel()

	agent, err := New(Config{PageNum: 20, Timeout: -1, BaseURL: "::"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer agent.Close()

	if agent.Config().PageNum != 1 {
		t.Fatalf("expected default page count, got %d", agent.Config().PageNum)
	}
}
