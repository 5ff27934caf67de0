package captest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/errors"

	"github.com/jmgilman/go/sysfs/capability"
)

// TestIdentity verifies the identity contract.
//
// With tracking, two names for one file share an identity, distinct files
// differ, and a missing path fails with CodeNotFound. Without tracking,
// every path reports an unknown identity with pair (0, 0), no two unknown
// identities are the same file, and missing paths do not fail.
func TestIdentity(t *testing.T, p capability.Provider, config Config) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", 0o644)
	b := writeFile(t, dir, "b.txt", 0o644)
	missing := filepath.Join(dir, "missing.txt")

	idA, err := p.Identity(a)
	if err != nil {
		t.Fatalf("Identity(%s): got error %v, want nil", a, err)
	}
	idB, err := p.Identity(b)
	if err != nil {
		t.Fatalf("Identity(%s): got error %v, want nil", b, err)
	}

	if !config.IdentityTracking {
		for _, id := range []capability.Identity{idA, idB} {
			if id.Known() {
				t.Errorf("Identity: Known() = true, want false")
			}
			if dev, ino := id.Pair(); dev != 0 || ino != 0 {
				t.Errorf("Identity: Pair() = (%d, %d), want (0, 0)", dev, ino)
			}
		}
		if idA.SameFile(idB) || idA.SameFile(idA) {
			t.Errorf("unknown identities must never compare as the same file")
		}
		if _, err := p.Identity(missing); err != nil {
			t.Errorf("Identity(%s): got error %v, want nil", missing, err)
		}
		return
	}

	if !idA.Known() || !idB.Known() {
		t.Fatalf("Identity: Known() = false, want true")
	}
	if idA.SameFile(idB) {
		t.Errorf("Identity(%s).SameFile(Identity(%s)) = true, want false", a, b)
	}

	link := filepath.Join(dir, "a-link.txt")
	if err := os.Link(a, link); err != nil {
		t.Logf("hard links not supported: %v", err)
	} else {
		idLink, err := p.Identity(link)
		if err != nil {
			t.Fatalf("Identity(%s): got error %v, want nil", link, err)
		}
		if !idA.SameFile(idLink) {
			t.Errorf("Identity(%s) = %v, want %v", link, idLink, idA)
		}
	}

	_, err = p.Identity(missing)
	if err == nil {
		t.Fatalf("Identity(%s): got nil error, want NOT_FOUND", missing)
	}
	if code := errors.GetCode(err); code != errors.CodeNotFound {
		t.Errorf("Identity(%s): code = %s, want %s", missing, code, errors.CodeNotFound)
	}
}

// TestOwnership verifies Ownership against the file's creator.
func TestOwnership(t *testing.T, p capability.Provider, config Config) {
	file := writeFile(t, t.TempDir(), "owned.txt", 0o644)
	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("Stat(%s): %v", file, err)
	}

	got := p.Ownership(info)
	if !config.OwnershipModel {
		if got != (capability.Ownership{}) {
			t.Errorf("Ownership(%s) = %+v, want zero", file, got)
		}
		return
	}

	if uid := os.Getuid(); uid >= 0 && got.UID != uint32(uid) {
		t.Errorf("Ownership(%s).UID = %d, want %d", file, got.UID, uid)
	}
	if p.Ownership(nil) != (capability.Ownership{}) {
		t.Errorf("Ownership(nil) must be zero")
	}
}
