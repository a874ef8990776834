package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "plain", false},
		{"JSON", "json", false},
		{" json ", "json", false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := parseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadSubmissions_Samples(t *testing.T) {
	subs, err := loadSubmissions("", 7)
	if err != nil {
		t.Fatalf("loadSubmissions: %v", err)
	}
	if len(subs) != 7 {
		t.Fatalf("got %d submissions, want 7", len(subs))
	}
	if subs[0].Email != "ada.lovelace@example.com" {
		t.Errorf("unexpected sample email %q", subs[0].Email)
	}

	if _, err := loadSubmissions("", -1); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestLoadSubmissions_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	data := `[{"Name":"Jo","Email":"jo@example.com","Message":"Hi"}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	subs, err := loadSubmissions(path, 0)
	if err != nil {
		t.Fatalf("loadSubmissions: %v", err)
	}
	if len(subs) != 1 || subs[0].Name != "Jo" {
		t.Errorf("unexpected submissions: %+v", subs)
	}

	if _, err := loadSubmissions(filepath.Join(t.TempDir(), "missing.json"), 0); err == nil {
		t.Error("expected error for missing file")
	}
}
