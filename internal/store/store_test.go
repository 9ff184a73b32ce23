package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCategories_TopLevelKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `
categories:
  - category: "Food & Dining"
    keywords: ["zomato", "swiggy"]
  - category: "Transfer"
    keywords: ["upi", "imps"]
    channel: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := NewRuleStore(path, "")
	rules, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Food & Dining", rules[0].Category)
	assert.Equal(t, []string{"zomato", "swiggy"}, rules[0].Keywords)
	assert.True(t, rules[1].Channel)
}

func TestLoadCategories_BareList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `
- category: "Fuel"
  keywords: ["petrol", "diesel"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := NewRuleStore(path, "")
	rules, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Fuel", rules[0].Category)
}

func TestLoadCategories_MissingFileIsNotAnError(t *testing.T) {
	s := NewRuleStore(filepath.Join(t.TempDir(), "nope.yaml"), "")
	rules, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Nil(t, rules)
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	content := `
profiles:
  - id: "axis-bank"
    label: "Axis Bank"
    kind: "bank-account"
    extractor: "sbi-bank"
    strong: ["axis bank"]
    weak: ["account statement", "savings"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := NewRuleStore("", path)
	profiles, err := s.LoadProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "axis-bank", profiles[0].ID)
	assert.Equal(t, "bank-account", profiles[0].Kind)
	assert.Equal(t, []string{"axis bank"}, profiles[0].Strong)
}

func TestLoadProfiles_MissingFileIsNotAnError(t *testing.T) {
	s := NewRuleStore("", filepath.Join(t.TempDir(), "nope.yaml"))
	profiles, err := s.LoadProfiles()
	require.NoError(t, err)
	assert.Nil(t, profiles)
}

func TestFindConfigFile_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: []"), 0644))

	s := NewRuleStore("", "")
	found, err := s.FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = s.FindConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
