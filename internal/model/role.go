package model

import (
	"fmt"
	"strings"
)

// Role is the audience an answer is framed for
type Role string

const (
	RoleScientist   Role = "Scientist"
	RolePolicymaker Role = "Policymaker"
	RoleStudent     Role = "Student"
)

// Roles lists the supported roles in display order
func Roles() []Role {
	return []Role{RoleScientist, RolePolicymaker, RoleStudent}
}

// ParseRole matches a role name case-insensitively
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %q (supported: Scientist, Policymaker, Student)", s)
}

// Context returns the one-line framing shown above the chat
func (r Role) Context() string {
	switch r {
	case RoleScientist:
		return "Detailed technical analysis with full methodology"
	case RolePolicymaker:
		return "Executive summary with policy implications"
	case RoleStudent:
		return "Educational explanation with learning resources"
	default:
		return "Standard analysis"
	}
}

// RoleView describes the dashboard variant for a role
type RoleView struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ShowAdvanced bool   `json:"show_advanced"`
}

// View returns the dashboard variant for the role
func (r Role) View() RoleView {
	switch r {
	case RolePolicymaker:
		return RoleView{
			Title:       "Ocean Policy Dashboard",
			Description: "Executive summary of ocean conditions and policy implications",
		}
	case RoleStudent:
		return RoleView{
			Title:       "Ocean Learning Dashboard",
			Description: "Educational exploration of oceanographic data",
		}
	default:
		return RoleView{
			Title:        "Scientific Analysis Dashboard",
			Description:  "Comprehensive oceanographic data analysis and validation",
			ShowAdvanced: true,
		}
	}
}
