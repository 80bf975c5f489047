package offer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveEligible(t *testing.T) {
	root := t.TempDir()
	e := eligibleEvaluation(t, nil)
	e.Profile.Name = "Li Wei"

	saved, err := newTestComposer(t, Company{}).Save(root, e)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "60plus", "Li_Wei", "result-ev-1.json"), saved.Result)
	assert.Equal(t, filepath.Join(root, "60plus", "Li_Wei", "offer-ev-1.md"), saved.Offer)

	data, err := os.ReadFile(saved.Result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ev-1", decoded["id"])
	assert.Equal(t, true, decoded["eligible"])

	letter, err := os.ReadFile(saved.Offer)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(letter), "Dear Li Wei,"))
}

func TestSaveIneligible(t *testing.T) {
	root := t.TempDir()
	e := eligibleEvaluation(t, nil)
	e.Eligible = false
	e.Recommendation = nil
	e.Profile.Name = "unknown"

	saved, err := newTestComposer(t, Company{}).Save(root, e)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "below60", "Candidate", "result-ev-1.json"), saved.Result)
	assert.Empty(t, saved.Offer)
	assert.FileExists(t, saved.Result)
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Li_Wei", safeName(" Li Wei "))
	assert.Equal(t, "张三", safeName("张三"))
	assert.Equal(t, "a_b", safeName("../a/b"))
	assert.Equal(t, "Candidate", safeName("///"))
}
