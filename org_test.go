package orgimporter

import (
	"errors"
	"strings"
	"testing"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/simon-fredrich/gitlab-org-importer/internal/testutils"
)

func TestReadUsersRejectsForeignHost(t *testing.T) {
	f := newFakeGitLab(t, testutils.LoadDataFromFile("testdata/users.json"))

	_, err := ReadUsers(f.client(t), "https://gitlab.elsewhere.example/groups/myteam", nil)
	if !errors.Is(err, ErrHostMismatch) {
		t.Fatalf("ReadUsers(...): expected ErrHostMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "gitlab.elsewhere.example") {
		t.Errorf("Expected the error to name the target host, got %q", err)
	}
	if len(f.seen()) != 0 {
		t.Errorf("Expected no requests for a mismatched host, got %d", len(f.seen()))
	}
}

func TestReadUsersGroupTarget(t *testing.T) {
	f := newFakeGitLab(t, testutils.LoadDataFromFile("testdata/group-members.json"))

	entities, err := ReadUsers(f.client(t), f.srv.URL+"/groups/myteam", nil)
	if err != nil {
		t.Fatalf("ReadUsers(...): unexpected error: %v", err)
	}
	if len(entities) != 2 {
		t.Errorf("Expected 2 entities, got %d", len(entities))
	}

	// Inherited members are included by default for group targets.
	if got := f.seen()[0].Path; got != "/api/v4/groups/myteam/members/all" {
		t.Errorf("Expected the inherited member listing path, got %s", got)
	}
}

func TestReadUsersGroupTargetWithoutInherited(t *testing.T) {
	f := newFakeGitLab(t, testutils.LoadDataFromFile("testdata/group-members.json"))

	opts := &UserIngestOptions{Inherited: gitlab.Ptr(false)}
	if _, err := ReadUsers(f.client(t), f.srv.URL+"/groups/myteam", opts); err != nil {
		t.Fatalf("ReadUsers(...): unexpected error: %v", err)
	}

	if got := f.seen()[0].Path; got != "/api/v4/groups/myteam/members" {
		t.Errorf("Expected the direct member listing path, got %s", got)
	}
}

func TestReadUsersNestedGroupTarget(t *testing.T) {
	f := newFakeGitLab(t, testutils.LoadDataFromFile("testdata/group-members.json"))

	if _, err := ReadUsers(f.client(t), f.srv.URL+"/groups/parent/child", nil); err != nil {
		t.Fatalf("ReadUsers(...): unexpected error: %v", err)
	}

	if got := f.seen()[0].EscapedPath(); !strings.Contains(got, "/groups/parent%2Fchild/members/all") {
		t.Errorf("Expected the full escaped group path, got %s", got)
	}
}

func TestReadUsersInstanceTarget(t *testing.T) {
	f := newFakeGitLab(t, testutils.LoadDataFromFile("testdata/users.json"))

	entities, err := ReadUsers(f.client(t), f.srv.URL, nil)
	if err != nil {
		t.Fatalf("ReadUsers(...): unexpected error: %v", err)
	}
	if len(entities) != 2 {
		t.Errorf("Expected 2 entities, got %d", len(entities))
	}

	if got := f.seen()[0].Path; got != "/api/v4/users" {
		t.Errorf("Expected the instance user listing path, got %s", got)
	}
}
