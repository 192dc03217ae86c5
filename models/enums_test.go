package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleUnmarshal(t *testing.T) {
	var r Role
	require.NoError(t, json.Unmarshal([]byte(`"admin"`), &r))
	assert.Equal(t, RoleAdmin, r)

	require.NoError(t, json.Unmarshal([]byte(`"user"`), &r))
	assert.Equal(t, RoleUser, r)

	// 未知值必须报错，不能静默落默认值
	assert.Error(t, json.Unmarshal([]byte(`"superuser"`), &r))
	assert.Error(t, json.Unmarshal([]byte(`""`), &r))
	assert.Error(t, json.Unmarshal([]byte(`123`), &r))
}

func TestStatusUnmarshal(t *testing.T) {
	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"enable"`), &s))
	assert.Equal(t, StatusEnable, s)

	require.NoError(t, json.Unmarshal([]byte(`"disable"`), &s))
	assert.Equal(t, StatusDisable, s)

	assert.Error(t, json.Unmarshal([]byte(`"offline"`), &s))
}

func TestEnumValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())

	assert.True(t, StatusEnable.Valid())
	assert.True(t, StatusDisable.Valid())
	assert.False(t, Status("banned").Valid())
}
