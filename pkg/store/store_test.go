package store

import (
	"testing"

	"github.com/agentstation/dirsync/pkg/policy"
	"github.com/agentstation/dirsync/pkg/secrets"
)

// TestMemStore_RealmLookup verifies realm registration and lookup.
func TestMemStore_RealmLookup(t *testing.T) {
	ms := NewMemStore()
	ms.AddRealm(&Realm{FullPath: "/corp"})

	tx := ms.ReadTx()
	if _, ok := tx.RealmByPath("/corp"); !ok {
		t.Error("registered realm not found")
	}
	if _, ok := tx.RealmByPath("/other"); ok {
		t.Error("unregistered realm found")
	}
}

// TestMemStore_Ancestors verifies the leaf-to-root walk, skipping path
// segments without a registered realm.
func TestMemStore_Ancestors(t *testing.T) {
	ms := NewMemStore()
	ms.AddRealm(&Realm{FullPath: "/"})
	ms.AddRealm(&Realm{FullPath: "/corp"})
	ms.AddRealm(&Realm{FullPath: "/corp/emea/berlin"})
	// note: /corp/emea deliberately not registered

	tx := ms.ReadTx()
	leaf, ok := tx.RealmByPath("/corp/emea/berlin")
	if !ok {
		t.Fatal("leaf realm not found")
	}

	ancestors := tx.Ancestors(leaf)
	want := []string{"/corp/emea/berlin", "/corp", "/"}
	if len(ancestors) != len(want) {
		t.Fatalf("Ancestors() returned %d realms, want %d", len(ancestors), len(want))
	}
	for i, path := range want {
		if ancestors[i].(*Realm).FullPath != path {
			t.Errorf("ancestors[%d] = %q, want %q", i, ancestors[i].(*Realm).FullPath, path)
		}
	}
}

// TestMemStore_AncestorsRoot verifies the root realm is its own ancestry.
func TestMemStore_AncestorsRoot(t *testing.T) {
	ms := NewMemStore()
	ms.AddRealm(&Realm{FullPath: "/"})

	tx := ms.ReadTx()
	root, _ := tx.RealmByPath("/")
	ancestors := tx.Ancestors(root)
	if len(ancestors) != 1 || ancestors[0].(*Realm).FullPath != "/" {
		t.Errorf("Ancestors(/) = %v", ancestors)
	}
}

// TestMemStore_Resources verifies resource lookup through both views.
func TestMemStore_Resources(t *testing.T) {
	ms := NewMemStore()
	ms.AddResource(&Resource{Name: "ldap", Policy: &policy.Policy{Name: "ldap-policy"}})

	tx := ms.ReadTx()
	res, ok := tx.ResourceByName("ldap")
	if !ok {
		t.Fatal("resource not found")
	}
	if res.PasswordPolicy().Name != "ldap-policy" {
		t.Errorf("policy = %+v", res.PasswordPolicy())
	}
}

// TestMemStore_Credentials verifies stored credential lookup.
func TestMemStore_Credentials(t *testing.T) {
	ms := NewMemStore()
	hash, err := secrets.Hash("pw", secrets.AlgorithmSHA256)
	if err != nil {
		t.Fatal(err)
	}
	ms.SetCredential("key-1", Credential{Hash: hash, Algorithm: secrets.AlgorithmSHA256})

	tx := ms.ReadTx()
	cred, ok := tx.CredentialByKey("key-1")
	if !ok || !secrets.Verify("pw", cred.Algorithm, cred.Hash) {
		t.Errorf("credential lookup = %+v, %v", cred, ok)
	}
	if _, ok := tx.CredentialByKey("missing"); ok {
		t.Error("missing credential found")
	}
}

// TestAncestorPaths verifies path expansion edge cases.
func TestAncestorPaths(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"/"}},
		{"/corp", []string{"/corp", "/"}},
		{"/corp/emea/", []string{"/corp/emea", "/corp", "/"}},
	}
	for _, tt := range tests {
		got := ancestorPaths(tt.path)
		if len(got) != len(tt.want) {
			t.Errorf("ancestorPaths(%q) = %v, want %v", tt.path, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("ancestorPaths(%q)[%d] = %q, want %q", tt.path, i, got[i], tt.want[i])
			}
		}
	}
}
