package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMarshalIncludesExtraAtTopLevel(t *testing.T) {
	u := User{
		ID:    "1700000000000",
		CNIC:  "12345",
		Extra: map[string]string{"referredBy": "a friend"},
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Equal(t, "12345", obj["cnic"])
	assert.Equal(t, "a friend", obj["referredBy"])
	_, nested := obj["Extra"]
	assert.False(t, nested, "extras are flattened, not nested")
}

func TestUserMarshalFatherNicNull(t *testing.T) {
	data, err := json.Marshal(User{CNIC: "12345"})
	require.NoError(t, err)

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &obj))
	value, present := obj["fatherNic"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestUserUnmarshalSplitsKnownAndExtra(t *testing.T) {
	raw := `{
		"id": "1700000000000",
		"cnic": "12345",
		"fullName": "A B",
		"fatherNic": "54321",
		"referredBy": "a friend",
		"campus": "main"
	}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	assert.Equal(t, "1700000000000", u.ID)
	assert.Equal(t, "12345", u.CNIC)
	assert.Equal(t, "A B", u.FullName)
	require.NotNil(t, u.FatherNic)
	assert.Equal(t, "54321", *u.FatherNic)
	assert.Equal(t, map[string]string{"referredBy": "a friend", "campus": "main"}, u.Extra)
}

func TestUserRoundTrip(t *testing.T) {
	nic := "54321"
	in := User{
		ID:        "1700000000000",
		Country:   "PK",
		CNIC:      "12345",
		FatherNic: &nic,
		Extra:     map[string]string{"referredBy": "a friend"},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out User
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestUserExtraNeverShadowsKnownField(t *testing.T) {
	u := User{
		CNIC:  "12345",
		Extra: map[string]string{"cnic": "99999"},
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Equal(t, "12345", obj["cnic"])
}
