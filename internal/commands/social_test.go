package commands_test

import (
	"math/rand/v2"
	"net/http"
	"strings"
	"testing"
	"time"

	"healthyou/internal/articles"
	"healthyou/internal/commands"
	"healthyou/internal/exitcode"
	"healthyou/internal/records"
	"healthyou/internal/share"
	"healthyou/internal/testutil"
)

// Tests for profile commands
func TestAddProfileCommand(t *testing.T) {
	e := newEnv(t, true)
	cmd := &commands.AddProfileCmd{}
	cmd.SetFields("Budi", "30", "170", "65")

	_, stderr, code := runCommand(t, cmd, e, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	stored := e.api.Records("profile")
	if len(stored) != 1 || stored[0]["name"] != "Budi" || stored[0]["weight"] != "65" {
		t.Errorf("unexpected stored profiles %v", stored)
	}
}

func TestAddProfileCommand_BadNumber(t *testing.T) {
	e := newEnv(t, true)
	cmd := &commands.AddProfileCmd{}
	cmd.SetFields("Budi", "-3", "", "")

	_, stderr, code := runCommand(t, cmd, e, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: age: must be a positive number\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestEditProfileCommand_KeepsOtherFields(t *testing.T) {
	e := newEnv(t, true)
	id := e.api.Seed("profile", records.Profile{Name: "Budi", Age: "30", Height: "170", Weight: "65"})
	cmd := &commands.EditProfileCmd{}
	cmd.SetFields("", "", "", "63")

	_, stderr, code := runCommand(t, cmd, e, []string{id}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	if n := e.api.Calls(http.MethodPut, "profile"); n != 1 {
		t.Errorf("expected 1 update call, got %d", n)
	}
	stored := e.api.Records("profile")[0]
	if stored["weight"] != "63" || stored["name"] != "Budi" || stored["age"] != "30" {
		t.Errorf("unexpected stored profile %v", stored)
	}
}

func TestEditProfileCommand_UnknownID(t *testing.T) {
	e := newEnv(t, true)
	cmd := &commands.EditProfileCmd{}
	cmd.SetFields("Sari", "", "", "")

	_, stderr, code := runCommand(t, cmd, e, []string{"nope"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: profile not found: nope\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if n := e.api.Calls(http.MethodPut, "profile"); n != 0 {
		t.Errorf("expected no update call, got %d", n)
	}
}

func TestEditProfileCommand_NothingToChange(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.EditProfileCmd{}, newEnv(t, true), []string{"1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: nothing to change\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestProfilesAndRmProfile(t *testing.T) {
	e := newEnv(t, true)
	id := e.api.Seed("profile", records.Profile{Name: "Budi", Age: "30"})

	stdout, _, _ := runCommand(t, &commands.ProfilesCmd{}, e, nil, false)
	if stdout != id+"  Budi  30 th  - cm  - kg\n" {
		t.Errorf("unexpected profiles output %q", stdout)
	}

	if _, stderr, code := runCommand(t, &commands.RmProfileCmd{}, e, []string{id}, false); code != exitcode.Success {
		t.Errorf("rmprofile failed: %s", stderr)
	}
	if n := len(e.api.Records("profile")); n != 0 {
		t.Errorf("expected profile deleted, %d left", n)
	}
}

// Tests for post commands
func TestPostCommand_Template(t *testing.T) {
	e := newEnv(t, true)
	cmd := &commands.PostCmd{}
	cmd.SetOptions("", 2)

	_, stderr, code := runCommand(t, cmd, e, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	stored := e.api.Records("Posts")
	if len(stored) != 1 || stored[0]["text"] != share.Templates[1] {
		t.Errorf("unexpected stored posts %v", stored)
	}
}

func TestPostCommand_TextWithImage(t *testing.T) {
	e := newEnv(t, true)
	cmd := &commands.PostCmd{}
	cmd.SetOptions("https://img.example/run.jpg", 0)

	_, _, code := runCommand(t, cmd, e, []string{"Lari", "pagi"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	stored := e.api.Records("Posts")
	if len(stored) != 1 || stored[0]["text"] != "Lari pagi" || stored[0]["image"] != "https://img.example/run.jpg" {
		t.Errorf("unexpected stored posts %v", stored)
	}
}

func TestPostCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		image    string
		template int
		args     []string
		want     string
	}{
		{"empty", "", 0, nil, "error: text: required\n"},
		{"text and template", "", 1, []string{"halo"}, "error: use either text or --template\n"},
		{"template out of range", "", 9, nil, "error: template must be between 1 and 5\n"},
		{"bad image", "not-a-url", 0, []string{"halo"}, "error: image: must be a URL\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, true)
			cmd := &commands.PostCmd{}
			cmd.SetOptions(tt.image, tt.template)

			_, stderr, code := runCommand(t, cmd, e, tt.args, false)

			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stderr != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr)
			}
			if n := e.api.TotalCalls(); n != 0 {
				t.Errorf("expected no network calls, got %d", n)
			}
		})
	}
}

func TestSharePostCommand(t *testing.T) {
	e := newEnv(t, true)
	id := e.api.Seed("Posts", records.Post{Text: "Jalan pagi"})

	stdout, _, code := runCommand(t, &commands.SharePostCmd{}, e, []string{id}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "Text:     Jalan pagi — Dibagikan dari HealthYou https://healthyou.vercel.app\n") {
		t.Errorf("missing share text in %q", stdout)
	}
	if !strings.Contains(stdout, "WhatsApp: https://wa.me/?text=Jalan%20pagi%20https://healthyou.vercel.app\n") {
		t.Errorf("missing WhatsApp link in %q", stdout)
	}

	_, stderr, code := runCommand(t, &commands.SharePostCmd{}, e, []string{"nope"}, false)
	if code != exitcode.UserError || stderr != "error: post not found: nope\n" {
		t.Errorf("unexpected result %d %q", code, stderr)
	}
}

func TestPostsAndRmPost(t *testing.T) {
	e := newEnv(t, true)

	stdout, _, _ := runCommand(t, &commands.PostsCmd{}, e, nil, false)
	if stdout != "no posts found\n" {
		t.Errorf("unexpected output %q", stdout)
	}

	id := e.api.Seed("Posts", records.Post{Text: "Halo"})
	if _, stderr, code := runCommand(t, &commands.RmPostCmd{}, e, []string{id}, false); code != exitcode.Success {
		t.Errorf("rmpost failed: %s", stderr)
	}
}

func TestTemplatesCommand(t *testing.T) {
	e := newEnv(t, false)

	stdout, _, code := runCommand(t, &commands.TemplatesCmd{}, e, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.HasPrefix(stdout, "1. "+share.Templates[0]+"\n") {
		t.Errorf("unexpected templates output %q", stdout)
	}
	if n := strings.Count(stdout, "\n"); n != len(share.Templates) {
		t.Errorf("expected %d lines, got %d", len(share.Templates), n)
	}
}

// Tests for dashboard command
func TestDashboardCommand_Query(t *testing.T) {
	e := newEnv(t, true)
	e.api.SetArticles(testutil.Article{PageID: 5, Title: "Pola tidur", Snippet: "Tidur <b>cukup</b>"})

	stdout, stderr, code := runCommand(t, &commands.DashboardCmd{}, e, []string{"pola", "tidur"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	expected := "Halo, Sari!\n------------\nArtikel: pola tidur\n------------\n 1. Pola tidur\n    Tidur cukup\n    https://id.wikipedia.org/?curid=5\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if got := e.api.LastSearch()["srsearch"]; got != "pola tidur" {
		t.Errorf("expected search for 'pola tidur', got %q", got)
	}
}

func TestDashboardCommand_RandomTopic(t *testing.T) {
	e := newEnv(t, true)
	cmd := &commands.DashboardCmd{}
	cmd.SetRand(rand.New(rand.NewPCG(7, 7)))

	stdout, _, code := runCommand(t, cmd, e, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	got := e.api.LastSearch()["srsearch"]
	found := false
	for _, k := range articles.Keywords {
		found = found || k == got
	}
	if !found {
		t.Errorf("expected a default keyword, got %q", got)
	}
	if !strings.HasSuffix(stdout, "no articles found\n") {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestDashboardCommand_SearchDown(t *testing.T) {
	e := newEnv(t, true)
	e.api.Fail(http.MethodGet, "w", http.StatusBadGateway)

	_, _, code := runCommand(t, &commands.DashboardCmd{}, e, []string{"air"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
}

func TestDashboardCommand_NotLoggedIn(t *testing.T) {
	e := newEnv(t, false)

	_, _, code := runCommand(t, &commands.DashboardCmd{}, e, []string{"air"}, false)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if n := e.api.TotalCalls(); n != 0 {
		t.Errorf("expected no network calls, got %d", n)
	}
}

// Tests for menu command
func TestMenuCommand_Today(t *testing.T) {
	cmd := &commands.MenuCmd{}
	cmd.SetClock(func() time.Time { return time.Date(2024, time.June, 3, 7, 0, 0, 0, time.Local) })

	stdout, _, code := runCommand(t, cmd, newEnv(t, true), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.HasPrefix(stdout, "Senin\n  Pagi:  Oatmeal") {
		t.Errorf("unexpected menu output %q", stdout)
	}
}

func TestMenuCommand_WeekAndDay(t *testing.T) {
	e := newEnv(t, true)

	cmd := &commands.MenuCmd{}
	cmd.SetOptions("", true)
	stdout, _, _ := runCommand(t, cmd, e, nil, false)
	if n := strings.Count(stdout, "  Pagi:"); n != 7 {
		t.Errorf("expected 7 days, got %d", n)
	}

	cmd.SetOptions("jumat", false)
	stdout, _, _ = runCommand(t, cmd, e, nil, false)
	if !strings.HasPrefix(stdout, "Jumat\n") {
		t.Errorf("unexpected output %q", stdout)
	}

	cmd.SetOptions("Friday", false)
	_, stderr, code := runCommand(t, cmd, e, nil, false)
	if code != exitcode.UserError || stderr != "error: unknown weekday: Friday\n" {
		t.Errorf("unexpected result %d %q", code, stderr)
	}
}
