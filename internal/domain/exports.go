package domain

import (
	interfaces "kiib/internal/domain/interfaces"
	types "kiib/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Role          = types.Role
	SessionState  = types.SessionState
	Timestamp     = types.Timestamp
	Credential    = types.Credential
	TokenClaims   = types.TokenClaims
	UserProfile   = types.UserProfile
	ProfileUpdate = types.ProfileUpdate
	Registration  = types.Registration
	Transaction   = types.Transaction
	AccrueRequest = types.AccrueRequest
	AccrueResult  = types.AccrueResult
	Post          = types.Post
	PostDraft     = types.PostDraft
)

// Role and state constants re-exported for compact imports.
const (
	RoleStudent = types.RoleStudent
	RoleAdmin   = types.RoleAdmin

	StateRestoring     = types.StateRestoring
	StateAnonymous     = types.StateAnonymous
	StateAuthenticated = types.StateAuthenticated
)

// ParseRole validates a role string received from the backend.
var ParseRole = types.ParseRole

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CredentialStore     = interfaces.CredentialStore
	APIClient           = interfaces.APIClient
	SessionService      = interfaces.SessionService
	AccountService      = interfaces.AccountService
	LedgerService       = interfaces.LedgerService
	PostsService        = interfaces.PostsService
	AchievementsService = interfaces.AchievementsService
)
