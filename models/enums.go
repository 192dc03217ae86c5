package models

import (
	"encoding/json"
	"fmt"
)

// Role 用户角色
type Role string

// Status 用户状态
type Status string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"

	StatusEnable  Status = "enable"
	StatusDisable Status = "disable"
)

// 消息角色
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// UnmarshalJSON 只接受枚举值，其他值直接报错
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Role(s) {
	case RoleUser, RoleAdmin:
		*r = Role(s)
		return nil
	}
	return fmt.Errorf("invalid role: %q", s)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch Status(v) {
	case StatusEnable, StatusDisable:
		*s = Status(v)
		return nil
	}
	return fmt.Errorf("invalid status: %q", v)
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (s Status) Valid() bool {
	return s == StatusEnable || s == StatusDisable
}
