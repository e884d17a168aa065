package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkills(t *testing.T) {
	assert.Equal(t, SkillList{"a", "b", "c", "d"}, NormalizeSkills("a,b,c,d"))
	assert.Equal(t, SkillList{"First Aid", "Cooking"}, NormalizeSkills(" First Aid , Cooking "))
	assert.Equal(t, SkillList{}, NormalizeSkills(""))
	assert.Equal(t, SkillList{}, NormalizeSkills("   "))
	assert.Equal(t, SkillList{"a"}, NormalizeSkills("a,"))
}

func TestSkillListUnmarshalJSON_BothShapes(t *testing.T) {
	var fromArray SkillList
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &fromArray))
	assert.Equal(t, SkillList{"a", "b"}, fromArray)

	var fromScalar SkillList
	require.NoError(t, json.Unmarshal([]byte(`"a, b"`), &fromScalar))
	assert.Equal(t, SkillList{"a", "b"}, fromScalar)

	var invalid SkillList
	assert.Error(t, json.Unmarshal([]byte(`42`), &invalid))
}

func TestSkillListMarshalJSON(t *testing.T) {
	data, err := json.Marshal(SkillList{"a", "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	data, err = json.Marshal(SkillList(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSkillListRoundTripsThroughColumn(t *testing.T) {
	value, err := SkillList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "a,b", value)

	var scanned SkillList
	require.NoError(t, scanned.Scan("a,b"))
	assert.Equal(t, SkillList{"a", "b"}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Equal(t, SkillList{}, scanned)
}
