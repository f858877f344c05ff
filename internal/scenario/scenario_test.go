package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/dirsync/pkg/connector"
	"github.com/agentstation/dirsync/pkg/errors"
	"github.com/agentstation/dirsync/pkg/identity"
)

const pullScenario = `
kind: person
destinationRealm: /corp
resource: ldap
realms:
  - fullPath: /
  - fullPath: /corp
    passwordPolicy:
      name: corp
      rules:
        - minLength: 12
resources:
  - name: ldap
    generatePasswordIfMissing: true
    mapping:
      items:
        - extAttr: uid
          intField: username
          purpose: pull
          connObjectKey: true
template:
  attrs:
    - schema: locale
      values: [en]
record:
  - name: uid
    values: [jdoe]
  - name: userPassword
    values: [pw123]
    secret: true
credentials:
  k1:
    hash: abc
    algorithm: plain
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoad verifies parsing and validation of a full scenario file.
func TestLoad(t *testing.T) {
	s, err := Load(writeScenario(t, pullScenario))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if s.Kind != identity.KindPerson {
		t.Errorf("Kind = %q", s.Kind)
	}
	if s.DestinationRealm != "/corp" {
		t.Errorf("DestinationRealm = %q", s.DestinationRealm)
	}
	if len(s.Realms) != 2 || len(s.Resources) != 1 {
		t.Errorf("parsed %d realms, %d resources", len(s.Realms), len(s.Resources))
	}
	if s.Template == nil || len(s.Template.Attrs) != 1 {
		t.Errorf("Template = %+v", s.Template)
	}
}

// TestLoad_Validation verifies rejected scenarios.
func TestLoad_Validation(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("Load(missing file) succeeded")
		}
	})

	t.Run("bad kind", func(t *testing.T) {
		_, err := Load(writeScenario(t, "kind: printer\nresource: ldap\nrecord: []\n"))
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("error = %v, want validation error", err)
		}
	})

	t.Run("missing resource", func(t *testing.T) {
		_, err := Load(writeScenario(t, "kind: person\nrecord: []\n"))
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("error = %v, want validation error", err)
		}
	})
}

// TestScenario_Store verifies the built store serves the configuration.
func TestScenario_Store(t *testing.T) {
	s, err := Load(writeScenario(t, pullScenario))
	if err != nil {
		t.Fatal(err)
	}

	tx := s.Store().ReadTx()
	realm, ok := tx.RealmByPath("/corp")
	if !ok || realm.PasswordPolicy() == nil {
		t.Errorf("realm lookup = %v, %v", realm, ok)
	}
	if _, ok := tx.ResourceByName("ldap"); !ok {
		t.Error("resource not served")
	}
	if _, ok := tx.CredentialByKey("k1"); !ok {
		t.Error("credential not served")
	}
}

// TestScenario_TargetResource verifies resolution of the target resource
// configuration.
func TestScenario_TargetResource(t *testing.T) {
	s, err := Load(writeScenario(t, pullScenario))
	if err != nil {
		t.Fatal(err)
	}

	res, ok := s.TargetResource()
	if !ok {
		t.Fatal("target resource not found")
	}
	if !res.GeneratePasswordIfMissing || res.Mapping == nil {
		t.Errorf("resource = %+v", res)
	}
}

// TestScenario_ConnectorRecord verifies secret attributes become guarded.
func TestScenario_ConnectorRecord(t *testing.T) {
	s, err := Load(writeScenario(t, pullScenario))
	if err != nil {
		t.Fatal(err)
	}

	rec := s.ConnectorRecord()
	attr, ok := rec.Lookup("userPassword")
	if !ok {
		t.Fatal("userPassword attribute missing")
	}
	if attr.Values[0].Kind() != connector.ValueGuardedString {
		t.Errorf("secret value kind = %v, want guarded", attr.Values[0].Kind())
	}
	if got := connector.ExtractSecret(attr.Values[0]); got != "pw123" {
		t.Errorf("secret = %q", got)
	}

	plain, _ := rec.Lookup("uid")
	if plain.Values[0].Kind() != connector.ValueString {
		t.Errorf("plain value kind = %v", plain.Values[0].Kind())
	}
}

// TestScenario_OriginalSnapshot verifies the kind-matched original.
func TestScenario_OriginalSnapshot(t *testing.T) {
	s, err := Load(writeScenario(t, pullScenario))
	if err != nil {
		t.Fatal(err)
	}
	if s.OriginalSnapshot() != nil {
		t.Error("creation scenario returned an original")
	}

	withOriginal := pullScenario + `
original:
  person:
    key: k1
    username: jdoe
`
	s, err = Load(writeScenario(t, withOriginal))
	if err != nil {
		t.Fatal(err)
	}
	snap := s.OriginalSnapshot()
	p, ok := snap.(*identity.Person)
	if !ok || p.Username != "jdoe" || p.Key != "k1" {
		t.Errorf("OriginalSnapshot() = %+v", snap)
	}
}
