package version

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		commit      string
		settings    map[string]string
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "ldflags win",
			version:     "v1.2.3",
			commit:      "abc1234",
			settings:    map[string]string{"vcs.revision": "ffffffffffff"},
			wantVersion: "v1.2.3",
			wantCommit:  "abc1234",
		},
		{
			name:    "from vcs",
			version: "",
			settings: map[string]string{
				"vcs.revision": "0123456789abcdef",
				"vcs.time":     "2025-03-14T10:00:00Z",
			},
			wantVersion: "dev-20250314",
			wantCommit:  "0123456",
		},
		{
			name: "dirty tree",
			settings: map[string]string{
				"vcs.revision": "0123456789abcdef",
				"vcs.modified": "true",
			},
			wantVersion: "dev",
			wantCommit:  "0123456-dirty",
		},
		{
			name:        "nothing known",
			wantVersion: "dev",
			wantCommit:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := resolve(tt.version, tt.commit, tt.settings)
			if v != tt.wantVersion {
				t.Errorf("version = %q, want %q", v, tt.wantVersion)
			}
			if c != tt.wantCommit {
				t.Errorf("commit = %q, want %q", c, tt.wantCommit)
			}
		})
	}
}

func TestFullAndUserAgent(t *testing.T) {
	Version, Commit = "v1.0.0", "abc1234"

	if got := Full(); got != "v1.0.0 (commit: abc1234)" {
		t.Errorf("Full() = %q", got)
	}
	if got := UserAgent(); got != "deckcalc/v1.0.0" {
		t.Errorf("UserAgent() = %q", got)
	}
	if info := Get(); info.Version != "v1.0.0" || info.Go == "" {
		t.Errorf("Get() = %+v", info)
	}
}
